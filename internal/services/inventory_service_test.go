package services_test

import (
	"errors"
	"testing"

	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

func TestRecordAdjustsStock(t *testing.T) {
	db := memdb(t)
	invRepo := repos.NewInventoryRepo(db)
	svc := services.NewInventoryService(invRepo, repos.NewColorRepo(db))

	// cl-rblue seeds at 16.
	if _, err := svc.Record("cl-rblue", "IN", 4, "restock"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Record("cl-rblue", "OUT", 6, ""); err != nil {
		t.Fatal(err)
	}

	stock, err := invRepo.Stock("cl-rblue")
	if err != nil {
		t.Fatal(err)
	}
	if stock != 14 {
		t.Fatalf("want stock 14 after +4/-6, got %d", stock)
	}

	rows, err := invRepo.ListTransactions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 transactions, got %d", len(rows))
	}
}

func TestRecordRejectsBadInput(t *testing.T) {
	db := memdb(t)
	svc := services.NewInventoryService(repos.NewInventoryRepo(db), repos.NewColorRepo(db))

	if _, err := svc.Record("cl-red", "MOVE", 1, ""); !errors.Is(err, services.ErrBadTxnType) {
		t.Fatalf("want ErrBadTxnType, got %v", err)
	}
	if _, err := svc.Record("cl-red", "IN", 0, ""); !errors.Is(err, services.ErrBadTxnQty) {
		t.Fatalf("want ErrBadTxnQty, got %v", err)
	}
	if _, err := svc.Record("cl-nope", "IN", 2, ""); err == nil {
		t.Fatal("unknown color should fail")
	}

	// Nothing above should have written.
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM inventory_transactions`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("rejected adjustments must not write, found %d", n)
	}
}

func TestStockLevelsThresholds(t *testing.T) {
	db := memdb(t)
	// Force one LOW and one OVER case.
	if _, err := db.Exec(`UPDATE colors SET stock=0, min_stock=5 WHERE id='cl-red'`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE colors SET stock=150, max_stock=100 WHERE id='cl-rani'`); err != nil {
		t.Fatal(err)
	}
	svc := services.NewInventoryService(repos.NewInventoryRepo(db), repos.NewColorRepo(db))

	levels, err := svc.StockLevels()
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, l := range levels {
		got[l.ID] = l.StockStatus
	}
	if got["cl-red"] != "LOW" {
		t.Fatalf("cl-red want LOW, got %s", got["cl-red"])
	}
	if got["cl-rani"] != "OVER" {
		t.Fatalf("cl-rani want OVER, got %s", got["cl-rani"])
	}
	if got["cl-rblue"] != "OK" {
		t.Fatalf("cl-rblue want OK, got %s", got["cl-rblue"])
	}
}
