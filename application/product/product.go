package product

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	sellerrepo "github.com/muhammadheryan/marketplace/repository/seller"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
	ListProducts(ctx context.Context) ([]model.ProductEntity, error)
	ListProductsBySeller(ctx context.Context, sellerID uint64) ([]model.ProductEntity, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
}

type productAppImpl struct {
	txRepo      txrepo.TxRepository
	productRepo productrepo.ProductRepository
	sellerRepo  sellerrepo.SellerRepository
}

func NewProductApp(txRepo txrepo.TxRepository, productRepo productrepo.ProductRepository, sellerRepo sellerrepo.SellerRepository) ProductApp {
	return &productAppImpl{
		txRepo:      txRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
	}
}

// CreateProduct checks the owning seller and inserts the product in the
// same transaction, so a concurrent seller delete cannot orphan it.
func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateProduct] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	seller, err := s.sellerRepo.GetByIDTx(ctx, tx, req.SellerID)
	if err != nil {
		logger.Error("[CreateProduct] get seller", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if seller == nil {
		return nil, errors.SetCustomError(constant.ErrConstraintViolation)
	}

	entity := &model.ProductEntity{
		Name:      req.Name,
		Price:     *req.Price,
		Qty:       *req.Qty,
		Purchased: req.Purchased,
		SellerID:  req.SellerID,
	}

	entity, err = s.productRepo.CreateTx(ctx, tx, entity)
	if err != nil {
		// product name carries a unique index
		if errors.IsDuplicateEntry(err) || errors.IsForeignKeyViolation(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[CreateProduct] insert product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateProduct] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return entity, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	entity, err := s.productRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.ProductEntity, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

// ListProductsBySeller returns the seller's products in insertion order.
// An unknown seller id yields an empty list, not an error.
func (s *productAppImpl) ListProductsBySeller(ctx context.Context, sellerID uint64) ([]model.ProductEntity, error) {
	products, err := s.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("[ListProductsBySeller] err productRepo.ListBySeller", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error) {
	existing, err := s.productRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.Update(ctx, id, req); err != nil {
		logger.Error("[UpdateProduct] err productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.productRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] err productRepo.Get updated", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	entity, err := s.productRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		// a transaction referencing the product blocks the delete
		if errors.IsRowReferenced(err) {
			return nil, errors.SetCustomError(constant.ErrConstraintViolation)
		}
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}
