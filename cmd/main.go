package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	buyerapp "github.com/muhammadheryan/marketplace/application/buyer"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	sellerapp "github.com/muhammadheryan/marketplace/application/seller"
	transactionapp "github.com/muhammadheryan/marketplace/application/transaction"
	"github.com/muhammadheryan/marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	_ "github.com/muhammadheryan/marketplace/docs"
	buyerRepo "github.com/muhammadheryan/marketplace/repository/buyer"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	sellerRepo "github.com/muhammadheryan/marketplace/repository/seller"
	transactionRepo "github.com/muhammadheryan/marketplace/repository/transaction"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Marketplace API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher is optional; unset host disables event publishing
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	SellerRepo := sellerRepo.NewSellerRepository(db)
	BuyerRepo := buyerRepo.NewBuyerRepository(db)
	TransactionRepo := transactionRepo.NewTransactionRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	ProductApp := productapp.NewProductApp(TxRepo, ProductRepo, SellerRepo)
	SellerApp := sellerapp.NewSellerApp(cfg, TxRepo, SellerRepo, ProductRepo, RedisRepo)
	BuyerApp := buyerapp.NewBuyerApp(BuyerRepo)
	TransactionApp := transactionapp.NewTransactionApp(TxRepo, TransactionRepo, ProductRepo, BuyerRepo, publisher)

	httpTransport := transport.NewTransport(ProductApp, SellerApp, BuyerApp, TransactionApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
