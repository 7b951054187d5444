package domain

type Route struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Status    string `db:"status" json:"status"` // Enable | Disable
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type Party struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Address       string `db:"address" json:"address"`
	RouteID       string `db:"route_id" json:"route_id"`
	ContactNumber string `db:"contact_number" json:"contact_number"`
	Status        string `db:"status" json:"status"` // Enable | Disable
	CreatedAt     string `db:"created_at" json:"created_at"`
	UpdatedAt     string `db:"updated_at" json:"updated_at,omitempty"`
}

type ColorCategory struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	DisplayOrder *int   `db:"display_order" json:"display_order"`
	CreatedAt    string `db:"created_at" json:"created_at"`
}

type ColorSubcategory struct {
	ID           string `db:"id" json:"id"`
	CategoryID   string `db:"category_id" json:"category_id"`
	Name         string `db:"name" json:"name"`
	DisplayOrder *int   `db:"display_order" json:"display_order"`
	CreatedAt    string `db:"created_at" json:"created_at"`
}

type Color struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Code          string `db:"code" json:"code"`
	ColorCode     string `db:"color_code" json:"color_code"` // hex swatch
	CategoryID    string `db:"category_id" json:"category_id"`
	SubcategoryID string `db:"subcategory_id" json:"subcategory_id"`
	Stock         int    `db:"stock" json:"stock"`
	MinStock      int    `db:"min_stock" json:"min_stock"`
	MaxStock      int    `db:"max_stock" json:"max_stock"`
	DisplayOrder  *int   `db:"display_order" json:"display_order"`
	Status        string `db:"status" json:"status"` // Enable | Disable
	CreatedAt     string `db:"created_at" json:"created_at"`
	UpdatedAt     string `db:"updated_at" json:"updated_at,omitempty"`
}

// Order statuses form a closed set; anything else is rejected at the edge.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderCompleted  = "Completed"
	OrderCancelled  = "Cancelled"
	OrderHold       = "Hold"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled, OrderHold:
		return true
	}
	return false
}

type Order struct {
	ID        string `db:"id" json:"id"`
	PartyID   string `db:"party_id" json:"party_id"`
	Date      string `db:"date" json:"date"`
	Status    string `db:"status" json:"status"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type OrderItem struct {
	OrderID     string `db:"order_id" json:"order_id"`
	ColorID     string `db:"color_id" json:"color_id"`
	Quantity    int    `db:"quantity" json:"quantity"`
	DeliveryQty int    `db:"delivery_qty" json:"delivery_qty"`
}

const (
	TxnIn  = "IN"
	TxnOut = "OUT"
)

type InventoryTransaction struct {
	ID        string `db:"id" json:"id"`
	ColorID   string `db:"color_id" json:"color_id"`
	Type      string `db:"transaction_type" json:"transaction_type"` // IN | OUT
	Quantity  int    `db:"quantity" json:"quantity"`
	Note      string `db:"note" json:"note"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
