package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ProductEntity) (*model.ProductEntity, error)
	Get(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error)
	List(ctx context.Context) ([]model.ProductEntity, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.ProductEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) error
	Delete(ctx context.Context, id uint64) error
	DeleteBySellerTx(ctx context.Context, tx *sqlx.Tx, sellerID uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery  = `INSERT INTO product (name, price, qty, purchased, seller_id) VALUES (?, ?, ?, ?, ?)`
	getProductQuery     = `SELECT id, name, price, qty, purchased, seller_id FROM product WHERE id = ?`
	listProductsBase    = `SELECT id, name, price, qty, purchased, seller_id FROM product`
	deleteProductQuery  = `DELETE FROM product WHERE id = ?`
	deleteBySellerQuery = `DELETE FROM product WHERE seller_id = ?`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ProductEntity) (*model.ProductEntity, error) {
	result, err := tx.ExecContext(ctx, insertProductQuery,
		data.Name, data.Price, data.Qty, data.Purchased, data.SellerID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := tx.QueryRowxContext(ctx, getProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ProductEntity, error) {
	return s.queryProducts(ctx, listProductsBase+" ORDER BY id")
}

func (s *SQL) ListBySeller(ctx context.Context, sellerID uint64) ([]model.ProductEntity, error) {
	return s.queryProducts(ctx, listProductsBase+" WHERE seller_id = ? ORDER BY id", sellerID)
}

func (s *SQL) queryProducts(ctx context.Context, query string, args ...any) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.ProductEntity, 0)
	for rows.Next() {
		var entity model.ProductEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		products = append(products, entity)
	}
	return products, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) error {
	query := "UPDATE product SET"
	args := make([]any, 0, 4)
	sep := " "

	if req.Price != nil {
		query += sep + "price = ?"
		args = append(args, *req.Price)
		sep = ", "
	}
	if req.Qty != nil {
		query += sep + "qty = ?"
		args = append(args, *req.Qty)
		sep = ", "
	}
	if req.Purchased != nil {
		query += sep + "purchased = ?"
		args = append(args, *req.Purchased)
		sep = ", "
	}
	if len(args) == 0 {
		return nil
	}

	query += " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}

func (s *SQL) DeleteBySellerTx(ctx context.Context, tx *sqlx.Tx, sellerID uint64) error {
	_, err := tx.ExecContext(ctx, deleteBySellerQuery, sellerID)
	return err
}
