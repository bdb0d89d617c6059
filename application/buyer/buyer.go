package buyer

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	buyerrepo "github.com/muhammadheryan/marketplace/repository/buyer"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type BuyerApp interface {
	CreateBuyer(ctx context.Context, req *model.CreateBuyerRequest) (*model.BuyerEntity, error)
	GetBuyer(ctx context.Context, id uint64) (*model.BuyerEntity, error)
	ListBuyers(ctx context.Context) ([]model.BuyerEntity, error)
	UpdateBuyer(ctx context.Context, id uint64, req *model.UpdateBuyerRequest) (*model.BuyerEntity, error)
	DeleteBuyer(ctx context.Context, id uint64) (*model.BuyerEntity, error)
}

type buyerAppImpl struct {
	buyerRepo buyerrepo.BuyerRepository
}

func NewBuyerApp(buyerRepo buyerrepo.BuyerRepository) BuyerApp {
	return &buyerAppImpl{buyerRepo: buyerRepo}
}

func (s *buyerAppImpl) CreateBuyer(ctx context.Context, req *model.CreateBuyerRequest) (*model.BuyerEntity, error) {
	existing, err := s.buyerRepo.Get(ctx, &model.BuyerFilter{Email: req.BuyerEmail})
	if err != nil {
		logger.Error("[CreateBuyer] err buyerRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConstraintViolation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.BuyerPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateBuyer] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.BuyerEntity{
		Fname:        req.Fname,
		Lname:        req.Lname,
		Phone:        req.Phone,
		Address:      req.Address,
		BuyerEmail:   req.BuyerEmail,
		PasswordHash: string(hashedPassword),
	}

	entity, err = s.buyerRepo.Create(ctx, entity)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[CreateBuyer] err buyerRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return entity, nil
}

func (s *buyerAppImpl) GetBuyer(ctx context.Context, id uint64) (*model.BuyerEntity, error) {
	entity, err := s.buyerRepo.Get(ctx, &model.BuyerFilter{ID: id})
	if err != nil {
		logger.Error("[GetBuyer] err buyerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *buyerAppImpl) ListBuyers(ctx context.Context) ([]model.BuyerEntity, error) {
	buyers, err := s.buyerRepo.List(ctx)
	if err != nil {
		logger.Error("[ListBuyers] err buyerRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return buyers, nil
}

func (s *buyerAppImpl) UpdateBuyer(ctx context.Context, id uint64, req *model.UpdateBuyerRequest) (*model.BuyerEntity, error) {
	existing, err := s.buyerRepo.Get(ctx, &model.BuyerFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateBuyer] err buyerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	passwordHash := ""
	if req.BuyerPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.BuyerPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateBuyer] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		passwordHash = string(hashed)
	}

	if err := s.buyerRepo.Update(ctx, id, req, passwordHash); err != nil {
		logger.Error("[UpdateBuyer] err buyerRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.buyerRepo.Get(ctx, &model.BuyerFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateBuyer] err buyerRepo.Get updated", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

func (s *buyerAppImpl) DeleteBuyer(ctx context.Context, id uint64) (*model.BuyerEntity, error) {
	entity, err := s.buyerRepo.Get(ctx, &model.BuyerFilter{ID: id})
	if err != nil {
		logger.Error("[DeleteBuyer] err buyerRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.buyerRepo.Delete(ctx, id); err != nil {
		// a transaction referencing the buyer blocks the delete
		if errors.IsRowReferenced(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[DeleteBuyer] err buyerRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}
