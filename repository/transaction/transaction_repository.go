package transaction

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TransactionRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.TransactionEntity) (*model.TransactionEntity, error)
	Get(ctx context.Context, id uint64) (*model.TransactionEntity, error)
	List(ctx context.Context) ([]model.TransactionEntity, error)
	Delete(ctx context.Context, id uint64) error
}

func NewTransactionRepository(conn *sqlx.DB) TransactionRepository {
	return &SQL{conn: conn}
}

const (
	insertTransactionQuery = `INSERT INTO transaction (date_created, amount, product_id, buyer_id) VALUES (?, ?, ?, ?)`
	getTransactionQuery    = `SELECT id, date_created, amount, product_id, buyer_id FROM transaction WHERE id = ?`
	listTransactionsQuery  = `SELECT id, date_created, amount, product_id, buyer_id FROM transaction ORDER BY id`
	deleteTransactionQuery = `DELETE FROM transaction WHERE id = ?`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.TransactionEntity) (*model.TransactionEntity, error) {
	result, err := tx.ExecContext(ctx, insertTransactionQuery,
		data.DateCreated, data.Amount, data.ProductID, data.BuyerID)
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

func (s *SQL) Get(ctx context.Context, id uint64) (*model.TransactionEntity, error) {
	var entity model.TransactionEntity
	if err := s.conn.QueryRowxContext(ctx, getTransactionQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.TransactionEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listTransactionsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]model.TransactionEntity, 0)
	for rows.Next() {
		var entity model.TransactionEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		transactions = append(transactions, entity)
	}
	return transactions, rows.Err()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteTransactionQuery, id)
	return err
}
