package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appproduct "github.com/muhammadheryan/marketplace/application/product"
	"github.com/muhammadheryan/marketplace/constant"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	sellermocks "github.com/muhammadheryan/marketplace/mocks/repository/seller"
	txmocks "github.com/muhammadheryan/marketplace/mocks/repository/tx"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, errType constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errType] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errType])
	}
}

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
func boolPtr(v bool) *bool          { return &v }

func TestProductApp_CreateProduct(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		productRepo *productmocks.ProductRepository
		sellerRepo  *sellermocks.SellerRepository
	}
	tests := []struct {
		name     string
		req      *model.CreateProductRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: product created under existing seller",
			req: &model.CreateProductRequest{
				Name:     "widget",
				Price:    float64Ptr(9.99),
				Qty:      int64Ptr(5),
				SellerID: 1,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.sellerRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(1)).
					Return(&model.SellerEntity{ID: 1}, nil).
					Once()
				f.productRepo.
					On("CreateTx", mock.Anything, tx, &model.ProductEntity{
						Name:     "widget",
						Price:    9.99,
						Qty:      5,
						SellerID: 1,
					}).
					Return(&model.ProductEntity{ID: 10, Name: "widget", Price: 9.99, Qty: 5, SellerID: 1}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: owning seller does not exist",
			req: &model.CreateProductRequest{
				Name:     "widget",
				Price:    float64Ptr(9.99),
				Qty:      int64Ptr(5),
				SellerID: 999,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.sellerRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrConstraintViolation,
		},
		{
			name: "error: duplicate product name",
			req: &model.CreateProductRequest{
				Name:     "widget",
				Price:    float64Ptr(9.99),
				Qty:      int64Ptr(5),
				SellerID: 1,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.sellerRepo.
					On("GetByIDTx", mock.Anything, tx, uint64(1)).
					Return(&model.SellerEntity{ID: 1}, nil).
					Once()
				f.productRepo.
					On("CreateTx", mock.Anything, tx, mock.Anything).
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'widget'"}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrConstraintViolation,
		},
		{
			name: "error: begin tx fails",
			req: &model.CreateProductRequest{
				Name:     "widget",
				Price:    float64Ptr(9.99),
				Qty:      int64Ptr(5),
				SellerID: 1,
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", (*sqlx.Tx)(nil)).Return(nil).Maybe()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				sellerRepo:  sellermocks.NewSellerRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appproduct.NewProductApp(f.txRepo, f.productRepo, f.sellerRepo)

			got, err := app.CreateProduct(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != 10 || got.Name != tt.req.Name {
				t.Fatalf("CreateProduct() = %+v", got)
			}
		})
	}
}

func TestProductApp_UpdateProduct(t *testing.T) {
	t.Run("success: only provided fields reach the repository", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		req := &model.UpdateProductRequest{Price: float64Ptr(19.99)}

		productRepo.
			On("Get", mock.Anything, uint64(10)).
			Return(&model.ProductEntity{ID: 10, Name: "widget", Price: 9.99, Qty: 5, SellerID: 1}, nil).
			Once()
		productRepo.
			On("Update", mock.Anything, uint64(10), mock.MatchedBy(func(r *model.UpdateProductRequest) bool {
				return r.Price != nil && *r.Price == 19.99 && r.Qty == nil && r.Purchased == nil
			})).
			Return(nil).
			Once()
		productRepo.
			On("Get", mock.Anything, uint64(10)).
			Return(&model.ProductEntity{ID: 10, Name: "widget", Price: 19.99, Qty: 5, SellerID: 1}, nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		got, err := app.UpdateProduct(context.Background(), 10, req)
		if err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}
		if got.Price != 19.99 || got.Qty != 5 {
			t.Fatalf("UpdateProduct() = %+v", got)
		}
	})

	t.Run("success: purchased flag update", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		req := &model.UpdateProductRequest{Purchased: boolPtr(true)}

		productRepo.
			On("Get", mock.Anything, uint64(10)).
			Return(&model.ProductEntity{ID: 10, Name: "widget", SellerID: 1}, nil).
			Once()
		productRepo.
			On("Update", mock.Anything, uint64(10), req).
			Return(nil).
			Once()
		productRepo.
			On("Get", mock.Anything, uint64(10)).
			Return(&model.ProductEntity{ID: 10, Name: "widget", Purchased: true, SellerID: 1}, nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		got, err := app.UpdateProduct(context.Background(), 10, req)
		if err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}
		if !got.Purchased {
			t.Fatalf("UpdateProduct() purchased = false, want true")
		}
	})

	t.Run("error: product not found", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		productRepo.
			On("Get", mock.Anything, uint64(404)).
			Return(nil, nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		_, err := app.UpdateProduct(context.Background(), 404, &model.UpdateProductRequest{})
		if err == nil {
			t.Fatal("UpdateProduct() expected error")
		}
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestProductApp_DeleteProduct(t *testing.T) {
	t.Run("success: returns the deleted record", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		productRepo.
			On("Get", mock.Anything, uint64(10)).
			Return(&model.ProductEntity{ID: 10, Name: "widget", SellerID: 1}, nil).
			Once()
		productRepo.
			On("Delete", mock.Anything, uint64(10)).
			Return(nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		got, err := app.DeleteProduct(context.Background(), 10)
		if err != nil {
			t.Fatalf("DeleteProduct() error = %v", err)
		}
		if got == nil || got.ID != 10 || got.Name != "widget" {
			t.Fatalf("DeleteProduct() = %+v, want deleted record", got)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		productRepo.
			On("Get", mock.Anything, uint64(404)).
			Return(nil, nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		_, err := app.DeleteProduct(context.Background(), 404)
		if err == nil {
			t.Fatal("DeleteProduct() expected error")
		}
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: referencing transaction blocks the delete", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		productRepo.
			On("Get", mock.Anything, uint64(10)).
			Return(&model.ProductEntity{ID: 10, Name: "widget", SellerID: 1}, nil).
			Once()
		productRepo.
			On("Delete", mock.Anything, uint64(10)).
			Return(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		_, err := app.DeleteProduct(context.Background(), 10)
		if err == nil {
			t.Fatal("DeleteProduct() expected error")
		}
		assertErrCode(t, err, constant.ErrConstraintViolation)
	})
}

func TestProductApp_ListProductsBySeller(t *testing.T) {
	t.Run("unknown seller yields empty list", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		productRepo.
			On("ListBySeller", mock.Anything, uint64(999)).
			Return([]model.ProductEntity{}, nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		got, err := app.ListProductsBySeller(context.Background(), 999)
		if err != nil {
			t.Fatalf("ListProductsBySeller() error = %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("ListProductsBySeller() = %+v, want empty", got)
		}
	})

	t.Run("returns the seller's products", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		sellerRepo := sellermocks.NewSellerRepository(t)

		productRepo.
			On("ListBySeller", mock.Anything, uint64(1)).
			Return([]model.ProductEntity{
				{ID: 10, Name: "widget", SellerID: 1},
				{ID: 11, Name: "gadget", SellerID: 1},
			}, nil).
			Once()

		app := appproduct.NewProductApp(txRepo, productRepo, sellerRepo)
		got, err := app.ListProductsBySeller(context.Background(), 1)
		if err != nil {
			t.Fatalf("ListProductsBySeller() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
			t.Fatalf("ListProductsBySeller() = %+v", got)
		}
	})
}
