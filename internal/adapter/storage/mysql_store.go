package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/stock-cache/internal/core/domain"
)

// MySQLStore keeps one row per product in stock_entries. This is the
// default durable backend.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (m *MySQLStore) Init(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stock_entries (
			product_id VARCHAR(128) NOT NULL PRIMARY KEY,
			stock      BIGINT       NOT NULL,
			updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create stock_entries: %w", err)
	}
	return nil
}

func (m *MySQLStore) Get(ctx context.Context, productID string) (int64, bool, error) {
	var stock int64
	err := m.db.QueryRowContext(ctx,
		`SELECT stock FROM stock_entries WHERE product_id = ?`, productID,
	).Scan(&stock)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query stock: %w", err)
	}
	return stock, true, nil
}

func (m *MySQLStore) Put(ctx context.Context, productID string, stock int64) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO stock_entries (product_id, stock) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE stock = VALUES(stock)`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

func (m *MySQLStore) ListAll(ctx context.Context) ([]domain.StockEntry, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT product_id, stock FROM stock_entries`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var entries []domain.StockEntry
	for rows.Next() {
		var e domain.StockEntry
		if err := rows.Scan(&e.ProductID, &e.Stock); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock rows: %w", err)
	}
	return entries, nil
}
