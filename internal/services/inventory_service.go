package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

var (
	ErrBadTxnType = errors.New("transaction type must be IN or OUT")
	ErrBadTxnQty  = errors.New("transaction quantity must be positive")
)

type InventoryService struct {
	Inv    *repos.InventoryRepo
	Colors *repos.ColorRepo
}

func NewInventoryService(inv *repos.InventoryRepo, colors *repos.ColorRepo) *InventoryService {
	return &InventoryService{Inv: inv, Colors: colors}
}

// Record validates and applies a manual IN/OUT stock adjustment.
func (s *InventoryService) Record(colorID, txnType string, qty int, note string) (domain.InventoryTransaction, error) {
	if txnType != domain.TxnIn && txnType != domain.TxnOut {
		return domain.InventoryTransaction{}, ErrBadTxnType
	}
	if qty <= 0 {
		return domain.InventoryTransaction{}, ErrBadTxnQty
	}
	t := domain.InventoryTransaction{
		ID:       uuid.NewString(),
		ColorID:  colorID,
		Type:     txnType,
		Quantity: qty,
		Note:     note,
	}
	if err := s.Inv.Record(t); err != nil {
		return domain.InventoryTransaction{}, err
	}
	return t, nil
}

// StockLevel pairs a color with its threshold status for the stock view.
type StockLevel struct {
	domain.Color
	StockStatus string `json:"stock_status"` // LOW | OK | OVER
}

func stockStatus(c domain.Color) string {
	switch {
	case c.Stock <= c.MinStock:
		return "LOW"
	case c.Stock >= c.MaxStock:
		return "OVER"
	}
	return "OK"
}

func (s *InventoryService) StockLevels() ([]StockLevel, error) {
	colors, err := s.Colors.List(false)
	if err != nil {
		return nil, err
	}
	out := make([]StockLevel, 0, len(colors))
	for _, c := range colors {
		out = append(out, StockLevel{Color: c, StockStatus: stockStatus(c)})
	}
	return out, nil
}
