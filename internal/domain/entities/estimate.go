package entities

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultItemQuantity is applied to line items that arrive without a quantity.
const DefaultItemQuantity = 1.0

// totalsTolerance absorbs float noise when checking totals produced elsewhere.
const totalsTolerance = 1e-6

// Party is a contractor or client block embedded by value in an Estimate.
type Party struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// LineItem is owned by exactly one Estimate.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Totals are the derived monetary fields of an Estimate.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Estimate is the contractor estimate (quote) record.
//
// Persistence scopes:
//   - anonymous sessions keep it in the device local store
//   - authenticated sessions keep it in the account-scoped remote store
//
// Subtotal, Tax and Total are derived from Items and TaxRatePercent and must only
// change through Recompute.
type Estimate struct {
	ID               string     `json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	Contractor       Party      `json:"contractor"`
	Client           Party      `json:"client"`
	Items            []LineItem `json:"items"`
	TaxRatePercent   float64    `json:"tax_rate"`
	Subtotal         float64    `json:"subtotal"`
	Tax              float64    `json:"tax"`
	Total            float64    `json:"total"`
	RenderedDocument string     `json:"rendered_document,omitempty"`
}

// NewLineItem returns an empty item slot with a fresh id.
func NewLineItem() LineItem {
	return LineItem{ID: uuid.NewString(), Quantity: DefaultItemQuantity}
}

// NewEstimate returns a fresh estimate with one blank item slot ready for editing.
func NewEstimate(now time.Time) Estimate {
	e := Estimate{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		Items:     []LineItem{NewLineItem()},
	}
	e.Recompute()
	return e
}

// ComputeTotals sums quantity*unit price over items and applies the tax rate.
// NaN, infinite and negative inputs count as 0.
func ComputeTotals(items []LineItem, taxRatePercent float64) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += nonNegative(it.Quantity) * nonNegative(it.UnitPrice)
	}
	tax := subtotal * nonNegative(taxRatePercent) / 100
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// Recompute refreshes Subtotal, Tax and Total from the items and tax rate.
func (e *Estimate) Recompute() {
	t := ComputeTotals(e.Items, e.TaxRatePercent)
	e.Subtotal, e.Tax, e.Total = t.Subtotal, t.Tax, t.Total
}

// Totals returns the stored totals.
func (e Estimate) Totals() Totals {
	return Totals{Subtotal: e.Subtotal, Tax: e.Tax, Total: e.Total}
}

// HasConsistentTotals reports whether the stored totals match the items.
func (e Estimate) HasConsistentTotals() bool {
	want := ComputeTotals(e.Items, e.TaxRatePercent)
	return closeEnough(e.Subtotal, want.Subtotal) &&
		closeEnough(e.Tax, want.Tax) &&
		closeEnough(e.Total, want.Total)
}

// UpsertItem replaces the item with the same id or appends it.
func (e *Estimate) UpsertItem(item LineItem) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	replaced := false
	for i := range e.Items {
		if e.Items[i].ID == item.ID {
			e.Items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		e.Items = append(e.Items, item)
	}
	e.Recompute()
}

// RemoveItem drops the item with the given id. It refuses to remove the last
// remaining item and reports whether anything was removed.
func (e *Estimate) RemoveItem(id string) bool {
	if len(e.Items) <= 1 {
		return false
	}
	for i := range e.Items {
		if e.Items[i].ID == id {
			e.Items = append(e.Items[:i:i], e.Items[i+1:]...)
			e.Recompute()
			return true
		}
	}
	return false
}

// Normalize converts loosely-typed input into the strict estimate shape:
// names are trimmed, items get unique ids, missing quantities default to 1,
// invalid numbers become 0 and totals are recomputed.
func (e *Estimate) Normalize() {
	e.ID = strings.TrimSpace(e.ID)
	e.Contractor = e.Contractor.trimmed()
	e.Client = e.Client.trimmed()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.TaxRatePercent = nonNegative(e.TaxRatePercent)

	seen := make(map[string]struct{}, len(e.Items))
	items := make([]LineItem, 0, len(e.Items))
	for _, it := range e.Items {
		it.ID = strings.TrimSpace(it.ID)
		if _, dup := seen[it.ID]; it.ID == "" || dup {
			it.ID = uuid.NewString()
		}
		seen[it.ID] = struct{}{}
		it.Name = strings.TrimSpace(it.Name)
		if math.IsNaN(it.Quantity) || it.Quantity == 0 {
			it.Quantity = DefaultItemQuantity
		}
		it.Quantity = nonNegative(it.Quantity)
		it.UnitPrice = nonNegative(it.UnitPrice)
		items = append(items, it)
	}
	e.Items = items
	e.Recompute()
}

// Clone returns a deep copy so callers can mutate items freely.
func (e Estimate) Clone() Estimate {
	if e.Items != nil {
		e.Items = append([]LineItem(nil), e.Items...)
	}
	return e
}

func (p Party) trimmed() Party {
	return Party{
		Name:    strings.TrimSpace(p.Name),
		Company: strings.TrimSpace(p.Company),
		Phone:   strings.TrimSpace(p.Phone),
		Email:   strings.TrimSpace(p.Email),
		Address: strings.TrimSpace(p.Address),
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= totalsTolerance*math.Max(1, math.Abs(b))
}
