package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
)

type ColorRepo struct{ db *sqlx.DB }

func NewColorRepo(db *sqlx.DB) *ColorRepo { return &ColorRepo{db: db} }

// Explicit display_order drives every catalog listing; rows without one sort
// after all explicit values, in insertion order.
const displayOrderClause = `(display_order IS NULL), display_order, rowid`

func (r *ColorRepo) Categories() ([]domain.ColorCategory, error) {
	var out []domain.ColorCategory
	err := r.db.Select(&out, `
	  SELECT id, name, display_order, created_at
	  FROM color_categories
	  ORDER BY `+displayOrderClause)
	if out == nil {
		out = []domain.ColorCategory{}
	}
	return out, err
}

func (r *ColorRepo) Subcategories() ([]domain.ColorSubcategory, error) {
	var out []domain.ColorSubcategory
	err := r.db.Select(&out, `
	  SELECT id, category_id, name, display_order, created_at
	  FROM color_subcategories
	  ORDER BY `+displayOrderClause)
	if out == nil {
		out = []domain.ColorSubcategory{}
	}
	return out, err
}

func (r *ColorRepo) CreateCategory(c domain.ColorCategory) error {
	_, err := r.db.Exec(`
	  INSERT INTO color_categories(id, name, display_order) VALUES(?, ?, ?)`,
		c.ID, c.Name, c.DisplayOrder)
	return err
}

func (r *ColorRepo) CreateSubcategory(s domain.ColorSubcategory) error {
	_, err := r.db.Exec(`
	  INSERT INTO color_subcategories(id, category_id, name, display_order)
	  VALUES(?, ?, ?, ?)`,
		s.ID, s.CategoryID, s.Name, s.DisplayOrder)
	return err
}

// colorGridOrder sorts colors exactly as the picker grid lays them out:
// category order, then subcategory order, then color order, each level
// NULL-last and insertion-stable.
const colorGridOrder = `(cat.display_order IS NULL), cat.display_order, cat.rowid,
	         (s.display_order IS NULL), s.display_order, s.rowid,
	         (c.display_order IS NULL), c.display_order, c.rowid`

// List returns all colors in grid order. onlyEnabled narrows to the rows
// the order picker may show.
func (r *ColorRepo) List(onlyEnabled bool) ([]domain.Color, error) {
	where := `1=1`
	if onlyEnabled {
		where = `c.status = 'Enable'`
	}
	var out []domain.Color
	err := r.db.Select(&out, `
	  SELECT c.id, c.name, c.code, c.color_code, c.category_id, c.subcategory_id,
	         c.stock, c.min_stock, c.max_stock, c.display_order, c.status,
	         c.created_at, COALESCE(c.updated_at,'') AS updated_at
	  FROM colors c
	  JOIN color_subcategories s ON s.id = c.subcategory_id
	  JOIN color_categories cat ON cat.id = c.category_id
	  WHERE `+where+`
	  ORDER BY `+colorGridOrder)
	if out == nil {
		out = []domain.Color{}
	}
	return out, err
}

func (r *ColorRepo) Get(id string) (domain.Color, error) {
	var c domain.Color
	err := r.db.Get(&c, `
	  SELECT id, name, code, color_code, category_id, subcategory_id,
	         stock, min_stock, max_stock, display_order, status,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM colors WHERE id = ?`, id)
	return c, err
}

func (r *ColorRepo) Create(c domain.Color) error {
	_, err := r.db.Exec(`
	  INSERT INTO colors(id, name, code, color_code, category_id, subcategory_id,
	    stock, min_stock, max_stock, display_order, status)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Code, c.ColorCode, c.CategoryID, c.SubcategoryID,
		c.Stock, c.MinStock, c.MaxStock, c.DisplayOrder, c.Status)
	return err
}

func (r *ColorRepo) Update(c domain.Color) error {
	_, err := r.db.Exec(`
	  UPDATE colors
	  SET name = ?, code = ?, color_code = ?, category_id = ?, subcategory_id = ?,
	      min_stock = ?, max_stock = ?, display_order = ?, status = ?,
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?`,
		c.Name, c.Code, c.ColorCode, c.CategoryID, c.SubcategoryID,
		c.MinStock, c.MaxStock, c.DisplayOrder, c.Status, c.ID)
	return err
}

func (r *ColorRepo) UpdateStock(id string, stock int) error {
	_, err := r.db.Exec(`
	  UPDATE colors SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		stock, id)
	return err
}

func (r *ColorRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM colors WHERE id = ?`, id)
	return err
}
