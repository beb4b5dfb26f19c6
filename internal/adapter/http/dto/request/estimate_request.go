package request

import (
	"errors"
	"strings"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PartyRequest fields are free text; their lengths are checked by
// entities.Validate, the same rule the device applies before saving.
type PartyRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type LineItemRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// EstimateRequest is the upsert payload. Totals sent by the client are
// ignored and recomputed from the items. Only the JSON shape and the sign of
// the numbers are checked here.
type EstimateRequest struct {
	ID         string            `json:"id"`
	CreatedAt  *time.Time        `json:"created_at"`
	Contractor PartyRequest      `json:"contractor"`
	Client     PartyRequest      `json:"client"`
	Items      []LineItemRequest `json:"items" validate:"dive"`
	TaxRate    float64           `json:"tax_rate" validate:"gte=0"`

	RenderedDocument string `json:"rendered_document"`
}

func (r EstimateRequest) Validate() error {
	return validate.Struct(r)
}

// ToEntity converts the payload into a normalized estimate.
func (r EstimateRequest) ToEntity(now time.Time) entities.Estimate {
	e := entities.Estimate{
		ID:               strings.TrimSpace(r.ID),
		CreatedAt:        now.UTC(),
		Contractor:       r.Contractor.toEntity(),
		Client:           r.Client.toEntity(),
		TaxRatePercent:   r.TaxRate,
		RenderedDocument: r.RenderedDocument,
	}
	if r.CreatedAt != nil && !r.CreatedAt.IsZero() {
		e.CreatedAt = r.CreatedAt.UTC()
	}
	for _, it := range r.Items {
		e.Items = append(e.Items, entities.LineItem{ID: it.ID, Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	e.Normalize()
	return e
}

func (p PartyRequest) toEntity() entities.Party {
	return entities.Party{Name: p.Name, Company: p.Company, Phone: p.Phone, Email: p.Email, Address: p.Address}
}

// FieldErrors flattens validator errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return out
}

// fieldPath drops the root struct name: EstimateRequest.Items[0].Quantity -> Items[0].Quantity
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
