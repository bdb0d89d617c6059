package buyer

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BuyerRepository interface {
	Create(ctx context.Context, data *model.BuyerEntity) (*model.BuyerEntity, error)
	Get(ctx context.Context, filter *model.BuyerFilter) (*model.BuyerEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.BuyerEntity, error)
	List(ctx context.Context) ([]model.BuyerEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateBuyerRequest, passwordHash string) error
	Delete(ctx context.Context, id uint64) error
}

func NewBuyerRepository(conn *sqlx.DB) BuyerRepository {
	return &SQL{conn: conn}
}

const (
	insertBuyerQuery = `INSERT INTO buyer (fname, lname, phone, address, buyer_email, buyer_password) VALUES (?, ?, ?, ?, ?, ?)`
	getBuyerBase     = `SELECT id, fname, lname, phone, address, buyer_email, buyer_password FROM buyer WHERE true`
	listBuyersQuery  = `SELECT id, fname, lname, phone, address, buyer_email, buyer_password FROM buyer ORDER BY id`
	deleteBuyerQuery = `DELETE FROM buyer WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.BuyerEntity) (*model.BuyerEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertBuyerQuery,
		data.Fname, data.Lname, data.Phone, data.Address, data.BuyerEmail, data.PasswordHash)
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

func (s *SQL) Get(ctx context.Context, filter *model.BuyerFilter) (*model.BuyerEntity, error) {
	// an unconstrained lookup would return an arbitrary row
	if filter.ID == 0 && filter.Email == "" {
		return nil, nil
	}

	query := getBuyerBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND buyer_email = ?"
		args = append(args, filter.Email)
	}

	var entity model.BuyerEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.BuyerEntity, error) {
	var entity model.BuyerEntity
	if err := tx.QueryRowxContext(ctx, getBuyerBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.BuyerEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listBuyersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buyers := make([]model.BuyerEntity, 0)
	for rows.Next() {
		var entity model.BuyerEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		buyers = append(buyers, entity)
	}
	return buyers, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateBuyerRequest, passwordHash string) error {
	query := "UPDATE buyer SET"
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
		query += sep + "buyer_password = ?"
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

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteBuyerQuery, id)
	return err
}
