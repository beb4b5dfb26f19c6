package response

import (
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

type PartyResponse struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type LineItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type EstimateResponse struct {
	ID               string             `json:"id"`
	CreatedAt        time.Time          `json:"created_at"`
	Contractor       PartyResponse      `json:"contractor"`
	Client           PartyResponse      `json:"client"`
	Items            []LineItemResponse `json:"items"`
	TaxRate          float64            `json:"tax_rate"`
	Subtotal         float64            `json:"subtotal"`
	Tax              float64            `json:"tax"`
	Total            float64            `json:"total"`
	RenderedDocument string             `json:"rendered_document,omitempty"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, LineItemResponse{ID: it.ID, Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return EstimateResponse{
		ID:               e.ID,
		CreatedAt:        e.CreatedAt,
		Contractor:       fromParty(e.Contractor),
		Client:           fromParty(e.Client),
		Items:            items,
		TaxRate:          e.TaxRatePercent,
		Subtotal:         e.Subtotal,
		Tax:              e.Tax,
		Total:            e.Total,
		RenderedDocument: e.RenderedDocument,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

func fromParty(p entities.Party) PartyResponse {
	return PartyResponse{Name: p.Name, Company: p.Company, Phone: p.Phone, Email: p.Email, Address: p.Address}
}

type QuotaResponse struct {
	Count     int  `json:"count"`
	Limit     int  `json:"limit"`
	Premium   bool `json:"premium"`
	CanCreate bool `json:"can_create"`
}

func FromQuota(q entities.QuotaStatus) QuotaResponse {
	return QuotaResponse{Count: q.Count, Limit: q.Limit, Premium: q.Premium, CanCreate: q.CanCreate}
}
