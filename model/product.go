package model

// ProductEntity represents the product table entity. Every product is
// owned by exactly one seller and is removed together with it.
type ProductEntity struct {
	ID        uint64  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Qty       int64   `db:"qty" json:"qty"`
	Purchased bool    `db:"purchased" json:"purchased"`
	SellerID  uint64  `db:"seller_id" json:"seller_id"`
}

// CreateProductRequest for POST /product
type CreateProductRequest struct {
	Name      string   `json:"name" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Qty       *int64   `json:"qty" validate:"required,gte=0"`
	Purchased bool     `json:"purchased"`
	SellerID  uint64   `json:"seller_id" validate:"required"`
}

// UpdateProductRequest for PUT /product/{id}. Only the mutable subset;
// name and seller_id are fixed at creation. Nil fields are left untouched.
type UpdateProductRequest struct {
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	Qty       *int64   `json:"qty" validate:"omitempty,gte=0"`
	Purchased *bool    `json:"purchased"`
}
