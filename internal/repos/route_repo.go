package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
)

type RouteRepo struct{ db *sqlx.DB }

func NewRouteRepo(db *sqlx.DB) *RouteRepo { return &RouteRepo{db: db} }

func (r *RouteRepo) List() ([]domain.Route, error) {
	var out []domain.Route
	err := r.db.Select(&out, `
	  SELECT id, name, status, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM routes
	  ORDER BY name`)
	if out == nil {
		out = []domain.Route{}
	}
	return out, err
}

func (r *RouteRepo) Create(rt domain.Route) error {
	_, err := r.db.Exec(`INSERT INTO routes(id, name, status) VALUES(?, ?, ?)`,
		rt.ID, rt.Name, rt.Status)
	return err
}

func (r *RouteRepo) Update(rt domain.Route) error {
	_, err := r.db.Exec(`
	  UPDATE routes SET name = ?, status = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?`, rt.Name, rt.Status, rt.ID)
	return err
}

// Delete fails with a FK error while parties still reference the route.
func (r *RouteRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM routes WHERE id = ?`, id)
	return err
}
