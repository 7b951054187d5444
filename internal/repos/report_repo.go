package repos

import "github.com/jmoiron/sqlx"

type ReportRepo struct{ db *sqlx.DB }

func NewReportRepo(db *sqlx.DB) *ReportRepo { return &ReportRepo{db: db} }

type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type PartyTotal struct {
	PartyID   string `db:"party_id"`
	PartyName string `db:"party_name"`
	Orders    int    `db:"orders"`
	TotalQty  int    `db:"total_qty"`
}

type ColorTotal struct {
	ColorID   string `db:"color_id"`
	ColorName string `db:"color_name"`
	TotalQty  int    `db:"total_qty"`
}

func dateWhere(from, to string, args *[]any) string {
	w := `1=1`
	if from != "" {
		w += ` AND o.date >= ?`
		*args = append(*args, from)
	}
	if to != "" {
		w += ` AND o.date <= ?`
		*args = append(*args, to)
	}
	return w
}

func (r *ReportRepo) CountByStatus(from, to string) ([]StatusCount, error) {
	args := []any{}
	w := dateWhere(from, to, &args)
	var out []StatusCount
	err := r.db.Select(&out, `
	  SELECT o.status, COUNT(*) AS count
	  FROM orders o
	  WHERE `+w+`
	  GROUP BY o.status
	  ORDER BY o.status`, args...)
	if out == nil {
		out = []StatusCount{}
	}
	return out, err
}

func (r *ReportRepo) TotalsByParty(from, to string, limit int) ([]PartyTotal, error) {
	if limit <= 0 {
		limit = 20
	}
	args := []any{}
	w := dateWhere(from, to, &args)
	args = append(args, limit)
	var out []PartyTotal
	err := r.db.Select(&out, `
	  SELECT o.party_id, p.name AS party_name,
	         COUNT(DISTINCT o.id) AS orders,
	         COALESCE(SUM(oi.quantity),0) AS total_qty
	  FROM orders o
	  JOIN parties p ON p.id = o.party_id
	  LEFT JOIN order_items oi ON oi.order_id = o.id
	  WHERE `+w+`
	  GROUP BY o.party_id
	  ORDER BY total_qty DESC
	  LIMIT ?`, args...)
	if out == nil {
		out = []PartyTotal{}
	}
	return out, err
}

func (r *ReportRepo) TotalsByColor(from, to string, limit int) ([]ColorTotal, error) {
	if limit <= 0 {
		limit = 20
	}
	args := []any{}
	w := dateWhere(from, to, &args)
	args = append(args, limit)
	var out []ColorTotal
	err := r.db.Select(&out, `
	  SELECT oi.color_id, c.name AS color_name,
	         COALESCE(SUM(oi.quantity),0) AS total_qty
	  FROM orders o
	  JOIN order_items oi ON oi.order_id = o.id
	  JOIN colors c ON c.id = oi.color_id
	  WHERE `+w+`
	  GROUP BY oi.color_id
	  ORDER BY total_qty DESC
	  LIMIT ?`, args...)
	if out == nil {
		out = []ColorTotal{}
	}
	return out, err
}
