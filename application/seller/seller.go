package seller

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	sellerrepo "github.com/muhammadheryan/marketplace/repository/seller"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type SellerApp interface {
	CreateSeller(ctx context.Context, req *model.CreateSellerRequest) (*model.SellerEntity, error)
	GetSeller(ctx context.Context, id uint64) (*model.SellerEntity, error)
	ListSellers(ctx context.Context) ([]model.SellerEntity, error)
	UpdateSeller(ctx context.Context, id uint64, req *model.UpdateSellerRequest) (*model.SellerEntity, error)
	DeleteSeller(ctx context.Context, id uint64) (*model.SellerEntity, error)
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	Logout(ctx context.Context, tokenString string) error
}

type sellerAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	sellerRepo  sellerrepo.SellerRepository
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewSellerApp(config *config.Config, txRepo txrepo.TxRepository, sellerRepo sellerrepo.SellerRepository, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) SellerApp {
	return &sellerAppImpl{
		config:      config,
		txRepo:      txRepo,
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		redisRepo:   redisRepo,
	}
}

func (s *sellerAppImpl) CreateSeller(ctx context.Context, req *model.CreateSellerRequest) (*model.SellerEntity, error) {
	existing, err := s.sellerRepo.Get(ctx, &model.SellerFilter{Email: req.SellerEmail})
	if err != nil {
		logger.Error("[CreateSeller] err sellerRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConstraintViolation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.SellerPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateSeller] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.SellerEntity{
		Fname:        req.Fname,
		Lname:        req.Lname,
		Phone:        req.Phone,
		Address:      req.Address,
		SellerEmail:  req.SellerEmail,
		PasswordHash: string(hashedPassword),
	}

	entity, err = s.sellerRepo.Create(ctx, entity)
	if err != nil {
		// unique index on seller_email backstops the pre-check above
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[CreateSeller] err sellerRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return entity, nil
}

func (s *sellerAppImpl) GetSeller(ctx context.Context, id uint64) (*model.SellerEntity, error) {
	entity, err := s.sellerRepo.Get(ctx, &model.SellerFilter{ID: id})
	if err != nil {
		logger.Error("[GetSeller] err sellerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *sellerAppImpl) ListSellers(ctx context.Context) ([]model.SellerEntity, error) {
	sellers, err := s.sellerRepo.List(ctx)
	if err != nil {
		logger.Error("[ListSellers] err sellerRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return sellers, nil
}

func (s *sellerAppImpl) UpdateSeller(ctx context.Context, id uint64, req *model.UpdateSellerRequest) (*model.SellerEntity, error) {
	existing, err := s.sellerRepo.Get(ctx, &model.SellerFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateSeller] err sellerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	passwordHash := ""
	if req.SellerPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.SellerPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateSeller] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		passwordHash = string(hashed)
	}

	if err := s.sellerRepo.Update(ctx, id, req, passwordHash); err != nil {
		logger.Error("[UpdateSeller] err sellerRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.sellerRepo.Get(ctx, &model.SellerFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateSeller] err sellerRepo.Get updated", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

// DeleteSeller removes the seller and all of its products in one
// transaction, returning the deleted record.
func (s *sellerAppImpl) DeleteSeller(ctx context.Context, id uint64) (*model.SellerEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteSeller] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.sellerRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteSeller] get seller", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.DeleteBySellerTx(ctx, tx, id); err != nil {
		// a transaction referencing one of the products blocks the cascade
		if errors.IsRowReferenced(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[DeleteSeller] cascade products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.sellerRepo.DeleteTx(ctx, tx, id); err != nil {
		if errors.IsRowReferenced(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[DeleteSeller] delete seller", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteSeller] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return entity, nil
}

func (s *sellerAppImpl) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	seller, err := s.sellerRepo.Get(ctx, &model.SellerFilter{Email: email})
	if err != nil {
		logger.Error("[Login] err sellerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if seller == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidUser)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, expiresAt, err := s.generateJWT(seller.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, seller.ID, s.config.Auth.TokenExpiration); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		SellerID:    seller.ID,
		SellerEmail: seller.SellerEmail,
		Token:       token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *sellerAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	sellerID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidToken)
	}

	if claims.ID == "" {
		return 0, errors.SetCustomError(constant.ErrInvalidToken)
	}

	// A token whose session is gone has been revoked.
	sessionSellerID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidToken)
	}
	if sessionSellerID != sellerID {
		return 0, errors.SetCustomError(constant.ErrInvalidToken)
	}

	return sellerID, nil
}

func (s *sellerAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *sellerAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.SetCustomError(constant.ErrExpiredToken)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}
	return claims, nil
}

// generateJWT creates a signed token for the seller
func (s *sellerAppImpl) generateJWT(sellerID uint64) (string, string, time.Time, error) {
	newUUID, _ := uuid.NewRandom()
	expiresAt := time.Now().Add(s.config.Auth.TokenExpiration)
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", sellerID),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}
