package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

var (
	ErrDraftNotFound = errors.New("draft not found")
	ErrPartyDisabled = errors.New("party is disabled")
)

// DraftService owns the open drafts. A draft exists from Open until Drop
// (submit success or cancel); a restart discards all of them, which matches
// the workflow's transient nature.
type DraftService struct {
	Parties *repos.PartyRepo

	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewDraftService(parties *repos.PartyRepo) *DraftService {
	return &DraftService{Parties: parties, drafts: map[string]*Draft{}}
}

// Open starts a draft for an existing, enabled party. The order date
// defaults to today.
func (s *DraftService) Open(partyID, date string) (*Draft, error) {
	p, err := s.Parties.Get(partyID)
	if err != nil {
		return nil, err
	}
	if p.Status != "Enable" {
		return nil, ErrPartyDisabled
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	d := NewDraft(uuid.NewString(), p.ID, date)
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d, nil
}

func (s *DraftService) Get(id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func (s *DraftService) Drop(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}

// ---------- Summary ----------

type SummaryRow struct {
	ColorID   string `json:"color_id"`
	ColorName string `json:"color_name"`
	Code      string `json:"code"`
	Swatch    string `json:"swatch"`
	Requested int    `json:"requested"`
	Delivery  int    `json:"delivery"`
}

// SummaryTable is one per-category reconciliation table: requested and
// delivery totals plus their difference (delivery - requested).
type SummaryTable struct {
	CategoryID     string       `json:"category_id"`
	CategoryName   string       `json:"category_name"`
	Rows           []SummaryRow `json:"rows"`
	RequestedTotal int          `json:"requested_total"`
	DeliveryTotal  int          `json:"delivery_total"`
	Difference     int          `json:"difference"`
}

// Summary builds one table per category, rows in catalog display order.
// With all=false only colors the operator has touched to a non-zero value
// appear; all=true lists every enabled color.
func (s *DraftService) Summary(d *Draft, catalog *CatalogService, all bool) ([]SummaryTable, int, int, error) {
	cats, err := catalog.Colors.Categories()
	if err != nil {
		return nil, 0, 0, err
	}
	colors, err := catalog.Colors.List(true)
	if err != nil {
		return nil, 0, 0, err
	}

	lines := d.Lines()
	byCat := map[string][]SummaryRow{}
	for _, c := range colors {
		l := lines[c.ID]
		if !all && l.Requested == 0 && l.Delivery == 0 {
			continue
		}
		byCat[c.CategoryID] = append(byCat[c.CategoryID], SummaryRow{
			ColorID:   c.ID,
			ColorName: c.Name,
			Code:      c.Code,
			Swatch:    c.ColorCode,
			Requested: l.Requested,
			Delivery:  l.Delivery,
		})
	}

	var tables []SummaryTable
	grandReq, grandDel := 0, 0
	for _, cat := range cats {
		rows := byCat[cat.ID]
		if rows == nil {
			rows = []SummaryRow{}
		}
		t := SummaryTable{CategoryID: cat.ID, CategoryName: cat.Name, Rows: rows}
		for _, row := range rows {
			t.RequestedTotal += row.Requested
			t.DeliveryTotal += row.Delivery
		}
		t.Difference = t.DeliveryTotal - t.RequestedTotal
		grandReq += t.RequestedTotal
		grandDel += t.DeliveryTotal
		tables = append(tables, t)
	}
	return tables, grandReq, grandDel, nil
}
