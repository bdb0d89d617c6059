package model

import "time"

// SellerEntity represents the seller table entity. The password hash is
// excluded from every serialized response via the json tag; call sites
// cannot leak it.
type SellerEntity struct {
	ID           uint64 `db:"id" json:"id"`
	Fname        string `db:"fname" json:"fname"`
	Lname        string `db:"lname" json:"lname"`
	Phone        string `db:"phone" json:"phone"`
	Address      string `db:"address" json:"address"`
	SellerEmail  string `db:"seller_email" json:"seller_email"`
	PasswordHash string `db:"seller_password" json:"-"`
}

// SellerFilter for querying sellers
type SellerFilter struct {
	ID    uint64
	Email string
}

// CreateSellerRequest for POST /seller
type CreateSellerRequest struct {
	Fname          string `json:"fname" validate:"required"`
	Lname          string `json:"lname" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	SellerEmail    string `json:"seller_email" validate:"required,email"`
	SellerPassword string `json:"seller_password" validate:"required"`
}

// UpdateSellerRequest for PUT /seller/{id}. Name and email are fixed at
// creation; a non-nil password is re-hashed before storage.
type UpdateSellerRequest struct {
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	SellerPassword *string `json:"seller_password"`
}

// LoginResponse carries the issued bearer token for a seller.
type LoginResponse struct {
	SellerID    uint64    `json:"seller_id"`
	SellerEmail string    `json:"seller_email"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
