package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// Ledger row joined with the color name for display.
type TransactionRow struct {
	ID        string `db:"id"`
	ColorID   string `db:"color_id"`
	ColorName string `db:"color_name"`
	Type      string `db:"transaction_type"`
	Quantity  int    `db:"quantity"`
	Note      string `db:"note"`
	CreatedAt string `db:"created_at"`
}

func (r *InventoryRepo) ListTransactions(limit int) ([]TransactionRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []TransactionRow
	err := r.db.Select(&out, `
	  SELECT t.id, t.color_id, c.name AS color_name, t.transaction_type,
	         t.quantity, t.note, t.created_at
	  FROM inventory_transactions t
	  JOIN colors c ON c.id = t.color_id
	  ORDER BY datetime(t.created_at) DESC, t.rowid DESC
	  LIMIT ?`, limit)
	if out == nil {
		out = []TransactionRow{}
	}
	return out, err
}

// Record inserts the adjustment row and applies the stock delta to the color
// in the same transaction, so the ledger and the stock column cannot drift.
func (r *InventoryRepo) Record(t domain.InventoryTransaction) error {
	delta := t.Quantity
	if t.Type == domain.TxnOut {
		delta = -delta
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO inventory_transactions(id, color_id, transaction_type, quantity, note)
	  VALUES(?, ?, ?, ?, ?)`,
		t.ID, t.ColorID, t.Type, t.Quantity, t.Note); err != nil {
		return err
	}
	res, err := tx.Exec(`
	  UPDATE colors SET stock = stock + ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?`, delta, t.ColorID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unknown color %s", t.ColorID)
	}
	return tx.Commit()
}

func (r *InventoryRepo) Stock(colorID string) (int, error) {
	var stock int
	err := r.db.Get(&stock, `SELECT stock FROM colors WHERE id = ?`, colorID)
	return stock, err
}
