package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/muhammadheryan/marketplace/model"
)

func TestSellerEntity_JSONOmitsPasswordHash(t *testing.T) {
	entity := model.SellerEntity{
		ID:           1,
		Fname:        "A",
		Lname:        "B",
		Phone:        "123",
		Address:      "X",
		SellerEmail:  "a@b.com",
		PasswordHash: "$2a$10$secret-hash",
	}

	out, err := json.Marshal(entity)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(out)
	if strings.Contains(body, "password") || strings.Contains(body, "secret-hash") {
		t.Fatalf("serialized seller leaks password material: %s", body)
	}
	if !strings.Contains(body, `"seller_email":"a@b.com"`) {
		t.Fatalf("serialized seller missing email: %s", body)
	}
}

func TestBuyerEntity_JSONOmitsPasswordHash(t *testing.T) {
	entity := model.BuyerEntity{
		ID:           2,
		Fname:        "C",
		Lname:        "D",
		Phone:        "456",
		Address:      "Y",
		BuyerEmail:   "c@d.com",
		PasswordHash: "$2a$10$secret-hash",
	}

	out, err := json.Marshal(entity)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(out)
	if strings.Contains(body, "password") || strings.Contains(body, "secret-hash") {
		t.Fatalf("serialized buyer leaks password material: %s", body)
	}
}
