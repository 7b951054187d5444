package services

import "sync"

// DraftLine is one color's quantities inside a draft. Delivery mirrors the
// requested quantity until the operator edits delivery directly; from then on
// the two move independently.
type DraftLine struct {
	Requested int  `json:"requested"`
	Delivery  int  `json:"delivery"`
	Diverged  bool `json:"diverged"`
}

// Draft is the transient, unsaved quantity selection for a prospective
// order. It lives in memory only; nothing is persisted until submission.
type Draft struct {
	ID      string `json:"id"`
	PartyID string `json:"party_id"`
	Date    string `json:"date"`

	mu    sync.Mutex
	lines map[string]*DraftLine
}

func NewDraft(id, partyID, date string) *Draft {
	return &Draft{ID: id, PartyID: partyID, Date: date, lines: map[string]*DraftLine{}}
}

func (d *Draft) line(colorID string) *DraftLine {
	l, ok := d.lines[colorID]
	if !ok {
		l = &DraftLine{}
		d.lines[colorID] = l
	}
	return l
}

// SetRequested sets the requested quantity for a color, clamped at zero.
// While the line has not diverged, delivery follows.
func (d *Draft) SetRequested(colorID string, qty int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if qty < 0 {
		qty = 0
	}
	l := d.line(colorID)
	l.Requested = qty
	if !l.Diverged {
		l.Delivery = qty
	}
}

func (d *Draft) Increment(colorID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := d.line(colorID)
	l.Requested++
	if !l.Diverged {
		l.Delivery = l.Requested
	}
}

// Decrement never drives the requested quantity below zero, no matter how
// often it is invoked.
func (d *Draft) Decrement(colorID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := d.line(colorID)
	if l.Requested > 0 {
		l.Requested--
	}
	if !l.Diverged {
		l.Delivery = l.Requested
	}
}

// SetDelivery sets the delivery quantity, clamped at zero, and marks the
// line diverged: later requested edits leave delivery alone.
func (d *Draft) SetDelivery(colorID string, qty int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if qty < 0 {
		qty = 0
	}
	l := d.line(colorID)
	l.Delivery = qty
	l.Diverged = true
}

// Clear wipes the whole quantity mapping in one step.
func (d *Draft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = map[string]*DraftLine{}
}

// Lines returns a copy of the quantity mapping.
func (d *Draft) Lines() map[string]DraftLine {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]DraftLine, len(d.lines))
	for id, l := range d.lines {
		out[id] = *l
	}
	return out
}

// Line reports a single color's quantities; absent lines read as zero.
func (d *Draft) Line(colorID string) DraftLine {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l, ok := d.lines[colorID]; ok {
		return *l
	}
	return DraftLine{}
}
