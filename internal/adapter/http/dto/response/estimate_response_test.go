package response

import (
	"testing"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             "est-1",
		CreatedAt:      now,
		Contractor:     entities.Party{Name: "Ana", Phone: "555"},
		Client:         entities.Party{Name: "Bob"},
		Items:          []entities.LineItem{{ID: "i1", Name: "Paint", Quantity: 2, UnitPrice: 50}},
		TaxRatePercent: 10,
	}
	e.Recompute()

	res := FromEstimate(e)
	if res.ID != "est-1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.Contractor.Phone != "555" || res.Client.Name != "Bob" {
		t.Fatalf("unexpected parties: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].UnitPrice != 50 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.TaxRate != 10 || res.Subtotal != 100 || res.Tax != 10 || res.Total != 110 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromEstimates_EmptyIsNotNull(t *testing.T) {
	if got := FromEstimates(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
	if got := FromEstimate(entities.Estimate{}); got.Items == nil {
		t.Fatal("expected empty items slice")
	}
}

func TestFromQuota(t *testing.T) {
	res := FromQuota(entities.NewQuotaStatus(5, false))
	if res.Count != 5 || res.Limit != entities.FreeEstimateLimit || res.Premium || res.CanCreate {
		t.Fatalf("unexpected quota: %+v", res)
	}
}
