package seller_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/marketplace/model"
	sellerrepo "github.com/muhammadheryan/marketplace/repository/seller"
)

func TestSellerRepository_Get_EmptyFilter(t *testing.T) {
	repo := sellerrepo.NewSellerRepository(nil)

	got, err := repo.Get(context.Background(), &model.SellerFilter{})
	if err != nil {
		t.Fatalf("Get() with empty filter error = %v", err)
	}
	if got != nil {
		t.Fatalf("Get() with empty filter = %+v, want nil", got)
	}
}
