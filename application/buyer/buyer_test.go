package buyer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	appbuyer "github.com/muhammadheryan/marketplace/application/buyer"
	"github.com/muhammadheryan/marketplace/constant"
	buyermocks "github.com/muhammadheryan/marketplace/mocks/repository/buyer"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
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

func stringPtr(v string) *string { return &v }

func TestBuyerApp_CreateBuyer(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateBuyerRequest
		mockCall func(m *buyermocks.BuyerRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create buyer with hashed password",
			req: &model.CreateBuyerRequest{
				Fname:         "C",
				Lname:         "D",
				Phone:         "456",
				Address:       "Y",
				BuyerEmail:    "c@d.com",
				BuyerPassword: "pw",
			},
			mockCall: func(m *buyermocks.BuyerRepository) {
				m.
					On("Get", mock.Anything, &model.BuyerFilter{Email: "c@d.com"}).
					Return(nil, nil).
					Once()
				m.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.BuyerEntity) bool {
						if ent.BuyerEmail != "c@d.com" || ent.PasswordHash == "pw" {
							return false
						}
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("pw")) == nil
					})).
					Return(&model.BuyerEntity{ID: 2, BuyerEmail: "c@d.com"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: email already exists",
			req: &model.CreateBuyerRequest{
				Fname:         "C",
				Lname:         "D",
				Phone:         "456",
				Address:       "Y",
				BuyerEmail:    "dup@d.com",
				BuyerPassword: "pw",
			},
			mockCall: func(m *buyermocks.BuyerRepository) {
				m.
					On("Get", mock.Anything, &model.BuyerFilter{Email: "dup@d.com"}).
					Return(&model.BuyerEntity{ID: 7, BuyerEmail: "dup@d.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrConstraintViolation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := buyermocks.NewBuyerRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appbuyer.NewBuyerApp(repo)

			got, err := app.CreateBuyer(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateBuyer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != 2 || got.BuyerEmail != tt.req.BuyerEmail {
				t.Fatalf("CreateBuyer() = %+v", got)
			}
		})
	}
}

func TestBuyerApp_GetBuyer(t *testing.T) {
	t.Run("error: not found", func(t *testing.T) {
		repo := buyermocks.NewBuyerRepository(t)
		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 404}).
			Return(nil, nil).
			Once()

		app := appbuyer.NewBuyerApp(repo)
		_, err := app.GetBuyer(context.Background(), 404)
		if err == nil {
			t.Fatal("GetBuyer() expected error")
		}
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestBuyerApp_UpdateBuyer(t *testing.T) {
	t.Run("success: password change is re-hashed", func(t *testing.T) {
		repo := buyermocks.NewBuyerRepository(t)
		req := &model.UpdateBuyerRequest{BuyerPassword: stringPtr("newpw")}

		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2, BuyerEmail: "c@d.com"}, nil).
			Once()
		repo.
			On("Update", mock.Anything, uint64(2), req, mock.MatchedBy(func(hash string) bool {
				return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpw")) == nil
			})).
			Return(nil).
			Once()
		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2, BuyerEmail: "c@d.com"}, nil).
			Once()

		app := appbuyer.NewBuyerApp(repo)
		if _, err := app.UpdateBuyer(context.Background(), 2, req); err != nil {
			t.Fatalf("UpdateBuyer() error = %v", err)
		}
	})

	t.Run("success: partial update leaves password hash empty", func(t *testing.T) {
		repo := buyermocks.NewBuyerRepository(t)
		req := &model.UpdateBuyerRequest{Phone: stringPtr("789")}

		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2, Phone: "456"}, nil).
			Once()
		repo.
			On("Update", mock.Anything, uint64(2), req, "").
			Return(nil).
			Once()
		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2, Phone: "789"}, nil).
			Once()

		app := appbuyer.NewBuyerApp(repo)
		got, err := app.UpdateBuyer(context.Background(), 2, req)
		if err != nil {
			t.Fatalf("UpdateBuyer() error = %v", err)
		}
		if got.Phone != "789" {
			t.Fatalf("UpdateBuyer() phone = %s, want 789", got.Phone)
		}
	})
}

func TestBuyerApp_DeleteBuyer(t *testing.T) {
	t.Run("success: returns the deleted record", func(t *testing.T) {
		repo := buyermocks.NewBuyerRepository(t)
		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2, BuyerEmail: "c@d.com"}, nil).
			Once()
		repo.
			On("Delete", mock.Anything, uint64(2)).
			Return(nil).
			Once()

		app := appbuyer.NewBuyerApp(repo)
		got, err := app.DeleteBuyer(context.Background(), 2)
		if err != nil {
			t.Fatalf("DeleteBuyer() error = %v", err)
		}
		if got == nil || got.ID != 2 {
			t.Fatalf("DeleteBuyer() = %+v, want deleted record", got)
		}
	})

	t.Run("error: referencing transaction blocks the delete", func(t *testing.T) {
		repo := buyermocks.NewBuyerRepository(t)
		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2}, nil).
			Once()
		repo.
			On("Delete", mock.Anything, uint64(2)).
			Return(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}).
			Once()

		app := appbuyer.NewBuyerApp(repo)
		_, err := app.DeleteBuyer(context.Background(), 2)
		if err == nil {
			t.Fatal("DeleteBuyer() expected error")
		}
		assertErrCode(t, err, constant.ErrConstraintViolation)
	})

	t.Run("error: delete fails", func(t *testing.T) {
		repo := buyermocks.NewBuyerRepository(t)
		repo.
			On("Get", mock.Anything, &model.BuyerFilter{ID: 2}).
			Return(&model.BuyerEntity{ID: 2}, nil).
			Once()
		repo.
			On("Delete", mock.Anything, uint64(2)).
			Return(errors.New("db error")).
			Once()

		app := appbuyer.NewBuyerApp(repo)
		_, err := app.DeleteBuyer(context.Background(), 2)
		if err == nil {
			t.Fatal("DeleteBuyer() expected error")
		}
		assertErrCode(t, err, constant.ErrInternal)
	})
}
