package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
)

type PartyRepo struct{ db *sqlx.DB }

func NewPartyRepo(db *sqlx.DB) *PartyRepo { return &PartyRepo{db: db} }

// List returns parties ordered by name. routeID narrows to one route; q is a
// case-insensitive substring matched against name OR address.
func (r *PartyRepo) List(routeID, q string) ([]domain.Party, error) {
	where := `1=1`
	args := []any{}
	if routeID != "" {
		where += ` AND route_id = ?`
		args = append(args, routeID)
	}
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(address) LIKE ?)`
		pat := "%" + strings.ToLower(q) + "%"
		args = append(args, pat, pat)
	}

	var out []domain.Party
	err := r.db.Select(&out, `
	  SELECT id, name, address, route_id, contact_number, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM parties
	  WHERE `+where+`
	  ORDER BY name`, args...)
	if out == nil {
		out = []domain.Party{}
	}
	return out, err
}

func (r *PartyRepo) Get(id string) (domain.Party, error) {
	var p domain.Party
	err := r.db.Get(&p, `
	  SELECT id, name, address, route_id, contact_number, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM parties WHERE id = ?`, id)
	return p, err
}

func (r *PartyRepo) Create(p domain.Party) error {
	_, err := r.db.Exec(`
	  INSERT INTO parties(id, name, address, route_id, contact_number, status)
	  VALUES(?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Address, p.RouteID, p.ContactNumber, p.Status)
	return err
}

func (r *PartyRepo) Update(p domain.Party) error {
	_, err := r.db.Exec(`
	  UPDATE parties
	  SET name = ?, address = ?, route_id = ?, contact_number = ?, status = ?,
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?`,
		p.Name, p.Address, p.RouteID, p.ContactNumber, p.Status, p.ID)
	return err
}

func (r *PartyRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM parties WHERE id = ?`, id)
	return err
}
