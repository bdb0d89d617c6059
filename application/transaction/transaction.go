package transaction

import (
	"context"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	buyerrepo "github.com/muhammadheryan/marketplace/repository/buyer"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	transactionrepo "github.com/muhammadheryan/marketplace/repository/transaction"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type TransactionApp interface {
	CreateTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.TransactionEntity, error)
	GetTransaction(ctx context.Context, id uint64) (*model.TransactionEntity, error)
	ListTransactions(ctx context.Context) ([]model.TransactionEntity, error)
	DeleteTransaction(ctx context.Context, id uint64) (*model.TransactionEntity, error)
}

type transactionAppImpl struct {
	txRepo          txrepo.TxRepository
	transactionRepo transactionrepo.TransactionRepository
	productRepo     productrepo.ProductRepository
	buyerRepo       buyerrepo.BuyerRepository
	publisher       *rabbitmq.Publisher
}

func NewTransactionApp(txRepo txrepo.TxRepository, transactionRepo transactionrepo.TransactionRepository, productRepo productrepo.ProductRepository, buyerRepo buyerrepo.BuyerRepository, publisher *rabbitmq.Publisher) TransactionApp {
	return &transactionAppImpl{
		txRepo:          txRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		buyerRepo:       buyerRepo,
		publisher:       publisher,
	}
}

// CreateTransaction validates both referenced records and inserts the
// purchase event inside one transaction. The recorded event is published
// after commit; publish failure is logged, never propagated, since the
// write is already durable.
func (s *transactionAppImpl) CreateTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.TransactionEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateTransaction] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	product, err := s.productRepo.GetByIDTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Error("[CreateTransaction] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrConstraintViolation)
	}

	buyer, err := s.buyerRepo.GetByIDTx(ctx, tx, req.BuyerID)
	if err != nil {
		logger.Error("[CreateTransaction] get buyer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if buyer == nil {
		return nil, errors.SetCustomError(constant.ErrConstraintViolation)
	}

	entity := &model.TransactionEntity{
		DateCreated: time.Now(),
		Amount:      *req.Amount,
		ProductID:   req.ProductID,
		BuyerID:     req.BuyerID,
	}

	entity, err = s.transactionRepo.CreateTx(ctx, tx, entity)
	if err != nil {
		if errors.IsForeignKeyViolation(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[CreateTransaction] insert transaction", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateTransaction] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.TransactionRecordedMessage{
			TransactionID: entity.ID,
			ProductID:     entity.ProductID,
			BuyerID:       entity.BuyerID,
			Amount:        entity.Amount,
			DateCreated:   entity.DateCreated,
		}
		if err := s.publisher.PublishTransactionRecorded(msg); err != nil {
			logger.Error("[CreateTransaction] publish recorded event", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}

func (s *transactionAppImpl) GetTransaction(ctx context.Context, id uint64) (*model.TransactionEntity, error) {
	entity, err := s.transactionRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetTransaction] err transactionRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *transactionAppImpl) ListTransactions(ctx context.Context) ([]model.TransactionEntity, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		logger.Error("[ListTransactions] err transactionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transactions, nil
}

func (s *transactionAppImpl) DeleteTransaction(ctx context.Context, id uint64) (*model.TransactionEntity, error) {
	entity, err := s.transactionRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[DeleteTransaction] err transactionRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteTransaction] err transactionRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}
