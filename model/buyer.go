package model

// BuyerEntity represents the buyer table entity. As with sellers, the
// password hash never appears in serialized output.
type BuyerEntity struct {
	ID           uint64 `db:"id" json:"id"`
	Fname        string `db:"fname" json:"fname"`
	Lname        string `db:"lname" json:"lname"`
	Phone        string `db:"phone" json:"phone"`
	Address      string `db:"address" json:"address"`
	BuyerEmail   string `db:"buyer_email" json:"buyer_email"`
	PasswordHash string `db:"buyer_password" json:"-"`
}

// BuyerFilter for querying buyers
type BuyerFilter struct {
	ID    uint64
	Email string
}

// CreateBuyerRequest for POST /buyer
type CreateBuyerRequest struct {
	Fname         string `json:"fname" validate:"required"`
	Lname         string `json:"lname" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	BuyerEmail    string `json:"buyer_email" validate:"required,email"`
	BuyerPassword string `json:"buyer_password" validate:"required"`
}

// UpdateBuyerRequest for PUT /buyer/{id}
type UpdateBuyerRequest struct {
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	BuyerPassword *string `json:"buyer_password"`
}
