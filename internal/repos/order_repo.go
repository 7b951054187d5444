package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// ---------- Ledger list summary ----------
type OrderSummary struct {
	ID        string `db:"id"`
	PartyID   string `db:"party_id"`
	PartyName string `db:"party_name"`
	Date      string `db:"date"`
	Status    string `db:"status"`
	Items     int    `db:"items"`
	TotalQty  int    `db:"total_qty"`
	CreatedAt string `db:"created_at"`
}

// ---------- Order detail ----------
type OrderItemRow struct {
	ColorID      string `db:"color_id"`
	ColorName    string `db:"color_name"`
	ColorCode    string `db:"code"`
	Swatch       string `db:"color_code"`
	CategoryID   string `db:"category_id"`
	CategoryName string `db:"category_name"`
	Quantity     int    `db:"quantity"`
	DeliveryQty  int    `db:"delivery_qty"`
}

// CreateWithItems persists the order header and every line item inside one
// transaction. Either the whole order lands or nothing does; there is no
// orphaned-header failure mode.
func (r *OrderRepo) CreateWithItems(o domain.Order, items []domain.OrderItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, party_id, date, status, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		o.ID, o.PartyID, o.Date, o.Status); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, color_id, quantity, delivery_qty)
		  VALUES(?, ?, ?, ?)`,
			o.ID, it.ColorID, it.Quantity, it.DeliveryQty); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns orders newest-first, optionally narrowed to a party and/or an
// inclusive date range (yyyy-mm-dd strings).
func (r *OrderRepo) List(partyID, from, to string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	where := `1=1`
	args := []any{}
	if partyID != "" {
		where += ` AND o.party_id = ?`
		args = append(args, partyID)
	}
	if from != "" {
		where += ` AND o.date >= ?`
		args = append(args, from)
	}
	if to != "" {
		where += ` AND o.date <= ?`
		args = append(args, to)
	}
	args = append(args, limit)

	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT o.id, o.party_id, p.name AS party_name, o.date, o.status,
	         COUNT(oi.color_id) AS items,
	         COALESCE(SUM(oi.quantity),0) AS total_qty,
	         o.created_at
	  FROM orders o
	  JOIN parties p ON p.id = o.party_id
	  LEFT JOIN order_items oi ON oi.order_id = o.id
	  WHERE `+where+`
	  GROUP BY o.id
	  ORDER BY o.date DESC, datetime(o.created_at) DESC
	  LIMIT ?`, args...)
	if out == nil {
		out = []OrderSummary{}
	}
	return out, err
}

func (r *OrderRepo) Get(id string) (domain.Order, []OrderItemRow, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, party_id, date, status, created_at FROM orders WHERE id = ?`, id); err != nil {
		return domain.Order{}, nil, err
	}

	// Same grid ordering as the picker, so the printed sheet reads like
	// the entry screen.
	var items []OrderItemRow
	if err := r.db.Select(&items, `
	  SELECT oi.color_id, c.name AS color_name, c.code, c.color_code,
	         c.category_id, cat.name AS category_name,
	         oi.quantity, oi.delivery_qty
	  FROM order_items oi
	  JOIN colors c ON c.id = oi.color_id
	  JOIN color_subcategories s ON s.id = c.subcategory_id
	  JOIN color_categories cat ON cat.id = c.category_id
	  WHERE oi.order_id = ?
	  ORDER BY `+colorGridOrder, id); err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}

// Delete removes the header; order_items go with it via ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	return err
}
