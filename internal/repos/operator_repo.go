package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
)

type OperatorRepo struct{ DB *sqlx.DB }

func NewOperatorRepo(db *sqlx.DB) *OperatorRepo { return &OperatorRepo{DB: db} }

const operatorCols = `id, username, name, password_hash, role,
  perm_dashboard, perm_inventory, perm_orders, perm_party, perm_color, perm_report`

func (r *OperatorRepo) ByUsername(username string) (*domain.Operator, error) {
	var o domain.Operator
	err := r.DB.Get(&o, `SELECT `+operatorCols+` FROM sub_admins WHERE LOWER(username)=LOWER(?)`, username)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OperatorRepo) ByID(id string) (*domain.Operator, error) {
	var o domain.Operator
	err := r.DB.Get(&o, `SELECT `+operatorCols+` FROM sub_admins WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns sub-admin operators (the master admin is not editable).
func (r *OperatorRepo) List() ([]domain.Operator, error) {
	var out []domain.Operator
	err := r.DB.Select(&out, `SELECT `+operatorCols+` FROM sub_admins WHERE role='SUB' ORDER BY username`)
	if out == nil {
		out = []domain.Operator{}
	}
	return out, err
}

func (r *OperatorRepo) Create(o domain.Operator) error {
	_, err := r.DB.Exec(`
	  INSERT INTO sub_admins(id, username, name, password_hash, role,
	    perm_dashboard, perm_inventory, perm_orders, perm_party, perm_color, perm_report)
	  VALUES(?, ?, ?, ?, 'SUB', ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Username, o.Name, o.Hash,
		o.Dashboard, o.Inventory, o.Orders, o.Party, o.Color, o.Report)
	return err
}

func (r *OperatorRepo) Update(o domain.Operator) error {
	_, err := r.DB.Exec(`
	  UPDATE sub_admins
	  SET name = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND role = 'SUB'`, o.Name, o.ID)
	return err
}

func (r *OperatorRepo) UpdatePassword(id, hash string) error {
	_, err := r.DB.Exec(`
	  UPDATE sub_admins SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND role = 'SUB'`, hash, id)
	return err
}

func (r *OperatorRepo) UpdatePermissions(id string, p domain.Permissions) error {
	_, err := r.DB.Exec(`
	  UPDATE sub_admins
	  SET perm_dashboard=?, perm_inventory=?, perm_orders=?, perm_party=?,
	      perm_color=?, perm_report=?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND role = 'SUB'`,
		p.Dashboard, p.Inventory, p.Orders, p.Party, p.Color, p.Report, id)
	return err
}

// Delete removes a sub-admin and detaches any live sessions.
func (r *OperatorRepo) Delete(id string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE sessions SET operator_id=NULL WHERE operator_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM sub_admins WHERE id=? AND role='SUB'`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ---------- Sessions ----------

func (r *OperatorRepo) BindSession(sid, operatorID string) error {
	_, err := r.DB.Exec(`
	  INSERT INTO sessions(id, operator_id, last_seen)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET operator_id=excluded.operator_id, last_seen=CURRENT_TIMESTAMP`,
		sid, operatorID)
	return err
}

func (r *OperatorRepo) SessionOperator(sid string) (*domain.Operator, error) {
	var o domain.Operator
	err := r.DB.Get(&o, `
	  SELECT a.id, a.username, a.name, a.password_hash, a.role,
	         a.perm_dashboard, a.perm_inventory, a.perm_orders, a.perm_party,
	         a.perm_color, a.perm_report
	  FROM sessions s
	  JOIN sub_admins a ON a.id = s.operator_id
	  WHERE s.id = ?`, sid)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OperatorRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET operator_id=NULL, last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
