package repos_test

import (
	"testing"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

func TestCreateWithItemsRollsBackOnBadItem(t *testing.T) {
	db := memdb(t)
	r := repos.NewOrderRepo(db)

	o := domain.Order{ID: "ord-1", PartyID: "pt-gurudev", Date: "2025-01-15", Status: domain.OrderPending}
	items := []domain.OrderItem{
		{ColorID: "cl-red", Quantity: 3, DeliveryQty: 3},
		{ColorID: "cl-does-not-exist", Quantity: 2, DeliveryQty: 2},
	}

	if err := r.CreateWithItems(o, items); err == nil {
		t.Fatal("foreign key violation should fail the whole batch")
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM orders WHERE id='ord-1'`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal("header must not survive a failed item insert")
	}
	if err := db.Get(&n, `SELECT COUNT(*) FROM order_items WHERE order_id='ord-1'`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal("partial items must not survive a failed batch")
	}
}

func TestOrderListFilters(t *testing.T) {
	db := memdb(t)
	r := repos.NewOrderRepo(db)

	mk := func(id, party, date string) {
		t.Helper()
		o := domain.Order{ID: id, PartyID: party, Date: date, Status: domain.OrderPending}
		items := []domain.OrderItem{{ColorID: "cl-red", Quantity: 1, DeliveryQty: 1}}
		if err := r.CreateWithItems(o, items); err != nil {
			t.Fatal(err)
		}
	}
	mk("ord-a", "pt-gurudev", "2025-01-10")
	mk("ord-b", "pt-gurudev", "2025-01-20")
	mk("ord-c", "pt-devansh", "2025-01-20")

	byParty, err := r.List("pt-gurudev", "", "", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(byParty) != 2 {
		t.Fatalf("party filter want 2, got %d", len(byParty))
	}
	if byParty[0].PartyName != "GURUDEV LACE" {
		t.Fatalf("party name should be joined in, got %q", byParty[0].PartyName)
	}

	byDate, err := r.List("", "2025-01-15", "2025-01-31", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(byDate) != 2 {
		t.Fatalf("date window want 2, got %d", len(byDate))
	}
}

func TestOrderDeleteCascadesItems(t *testing.T) {
	db := memdb(t)
	r := repos.NewOrderRepo(db)

	o := domain.Order{ID: "ord-z", PartyID: "pt-gurudev", Date: "2025-01-15", Status: domain.OrderPending}
	if err := r.CreateWithItems(o, []domain.OrderItem{{ColorID: "cl-red", Quantity: 2, DeliveryQty: 2}}); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete("ord-z"); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM order_items WHERE order_id='ord-z'`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("items should cascade on delete, %d left", n)
	}
}

func TestOrderItemsFollowGridOrder(t *testing.T) {
	db := memdb(t)
	r := repos.NewOrderRepo(db)

	// Inserted out of order, spanning two subcategories of 5 TAR; the
	// detail view must read back in grid order (Cetionic before
	// Polyester, each by its own color order).
	o := domain.Order{ID: "ord-g", PartyID: "pt-gurudev", Date: "2025-01-15", Status: domain.OrderPending}
	items := []domain.OrderItem{
		{ColorID: "cl-black", Quantity: 4, DeliveryQty: 4},
		{ColorID: "cl-rani", Quantity: 2, DeliveryQty: 2},
		{ColorID: "cl-red", Quantity: 1, DeliveryQty: 1},
	}
	if err := r.CreateWithItems(o, items); err != nil {
		t.Fatal(err)
	}

	_, rows, err := r.Get("ord-g")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cl-red", "cl-rani", "cl-black"}
	if len(rows) != len(want) {
		t.Fatalf("want %d rows, got %d", len(want), len(rows))
	}
	for i, id := range want {
		if rows[i].ColorID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, rows[i].ColorID)
		}
	}
}
