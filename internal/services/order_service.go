package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

var (
	ErrEmptyOrder   = errors.New("order has no items")
	ErrUnknownColor = errors.New("order references an unknown color")
)

type OrderService struct {
	Orders *repos.OrderRepo
	Colors *repos.ColorRepo
}

func NewOrderService(orders *repos.OrderRepo, colors *repos.ColorRepo) *OrderService {
	return &OrderService{Orders: orders, Colors: colors}
}

// Submit persists a draft as an order header plus its line items, all in one
// transaction. Zero-quantity lines never become items; an all-zero draft is
// rejected before any write. finalize=false keeps the order on Hold instead
// of Pending.
func (s *OrderService) Submit(d *Draft, finalize bool) (domain.Order, error) {
	lines := d.Lines()

	items := make([]domain.OrderItem, 0, len(lines))
	for colorID, l := range lines {
		if l.Requested <= 0 {
			continue
		}
		items = append(items, domain.OrderItem{
			ColorID:     colorID,
			Quantity:    l.Requested,
			DeliveryQty: l.Delivery,
		})
	}
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}
	// Map iteration order is random; keep the batch deterministic.
	sort.Slice(items, func(i, j int) bool { return items[i].ColorID < items[j].ColorID })

	// Catch stale or bogus color ids here rather than as a constraint
	// failure mid-transaction.
	for _, it := range items {
		if _, err := s.Colors.Get(it.ColorID); err != nil {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownColor, it.ColorID)
		}
	}

	status := domain.OrderPending
	if !finalize {
		status = domain.OrderHold
	}
	o := domain.Order{
		ID:      uuid.NewString(),
		PartyID: d.PartyID,
		Date:    d.Date,
		Status:  status,
	}
	if err := s.Orders.CreateWithItems(o, items); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}
