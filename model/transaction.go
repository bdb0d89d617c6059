package model

import "time"

// TransactionEntity represents a purchase event linking one product and
// one buyer. date_created is set server-side at insert time.
type TransactionEntity struct {
	ID          uint64    `db:"id" json:"id"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
	Amount      float64   `db:"amount" json:"amount"`
	ProductID   uint64    `db:"product_id" json:"product_id"`
	BuyerID     uint64    `db:"buyer_id" json:"buyer_id"`
}

// CreateTransactionRequest for POST /transaction
type CreateTransactionRequest struct {
	Amount    *float64 `json:"amount" validate:"required,gte=0"`
	ProductID uint64   `json:"product_id" validate:"required"`
	BuyerID   uint64   `json:"buyer_id" validate:"required"`
}
