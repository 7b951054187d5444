package domain

// Permissions is the closed set of per-feature capability flags a sub-admin
// can hold. Kept as a fixed struct (one column each) so a typo can never
// mint a dead permission key.
type Permissions struct {
	Dashboard bool `db:"perm_dashboard" json:"dashboard"`
	Inventory bool `db:"perm_inventory" json:"inventory"`
	Orders    bool `db:"perm_orders" json:"orders"`
	Party     bool `db:"perm_party" json:"party"`
	Color     bool `db:"perm_color" json:"color"`
	Report    bool `db:"perm_report" json:"report"`
}

// Capability names accepted by the authz layer.
const (
	CapDashboard = "dashboard"
	CapInventory = "inventory"
	CapOrders    = "orders"
	CapParty     = "party"
	CapColor     = "color"
	CapReport    = "report"
)

func (p Permissions) Has(cap string) bool {
	switch cap {
	case CapDashboard:
		return p.Dashboard
	case CapInventory:
		return p.Inventory
	case CapOrders:
		return p.Orders
	case CapParty:
		return p.Party
	case CapColor:
		return p.Color
	case CapReport:
		return p.Report
	}
	return false
}

type Operator struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Name     string `db:"name" json:"name"`
	Hash     string `db:"password_hash" json:"-"`
	Role     string `db:"role" json:"role"` // ADMIN | SUB
	Permissions
}

func (o *Operator) Can(cap string) bool {
	if o.Role == "ADMIN" {
		return true
	}
	return o.Has(cap)
}
