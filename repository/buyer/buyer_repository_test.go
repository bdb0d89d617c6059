package buyer_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/marketplace/model"
	buyerrepo "github.com/muhammadheryan/marketplace/repository/buyer"
)

func TestBuyerRepository_Get_EmptyFilter(t *testing.T) {
	repo := buyerrepo.NewBuyerRepository(nil)

	got, err := repo.Get(context.Background(), &model.BuyerFilter{})
	if err != nil {
		t.Fatalf("Get() with empty filter error = %v", err)
	}
	if got != nil {
		t.Fatalf("Get() with empty filter = %+v, want nil", got)
	}
}
