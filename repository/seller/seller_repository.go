package seller

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SellerRepository interface {
	Create(ctx context.Context, data *model.SellerEntity) (*model.SellerEntity, error)
	Get(ctx context.Context, filter *model.SellerFilter) (*model.SellerEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SellerEntity, error)
	List(ctx context.Context) ([]model.SellerEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateSellerRequest, passwordHash string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

func NewSellerRepository(conn *sqlx.DB) SellerRepository {
	return &SQL{conn: conn}
}

const (
	insertSellerQuery = `INSERT INTO seller (fname, lname, phone, address, seller_email, seller_password) VALUES (?, ?, ?, ?, ?, ?)`
	getSellerBase     = `SELECT id, fname, lname, phone, address, seller_email, seller_password FROM seller WHERE true`
	listSellersQuery  = `SELECT id, fname, lname, phone, address, seller_email, seller_password FROM seller ORDER BY id`
	deleteSellerQuery = `DELETE FROM seller WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.SellerEntity) (*model.SellerEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertSellerQuery,
		data.Fname, data.Lname, data.Phone, data.Address, data.SellerEmail, data.PasswordHash)
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

func (s *SQL) Get(ctx context.Context, filter *model.SellerFilter) (*model.SellerEntity, error) {
	// an unconstrained lookup would return an arbitrary row
	if filter.ID == 0 && filter.Email == "" {
		return nil, nil
	}

	query := getSellerBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND seller_email = ?"
		args = append(args, filter.Email)
	}

	var entity model.SellerEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SellerEntity, error) {
	var entity model.SellerEntity
	if err := tx.QueryRowxContext(ctx, getSellerBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.SellerEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listSellersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sellers := make([]model.SellerEntity, 0)
	for rows.Next() {
		var entity model.SellerEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		sellers = append(sellers, entity)
	}
	return sellers, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateSellerRequest, passwordHash string) error {
	query := "UPDATE seller SET"
	args := make([]any, 0, 4)
	sep := " "

	if req.Phone != nil {
		query += sep + "phone = ?"
		args = append(args, *req.Phone)
		sep = ", "
	}
	if req.Address != nil {
		query += sep + "address = ?"
		args = append(args, *req.Address)
		sep = ", "
	}
	if passwordHash != "" {
		query += sep + "seller_password = ?"
		args = append(args, passwordHash)
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

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteSellerQuery, id)
	return err
}
