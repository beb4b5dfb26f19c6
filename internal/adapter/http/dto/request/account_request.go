package request

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

type CreateAccountRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Company  string `json:"company" validate:"max=200"`
	Phone    string `json:"phone" validate:"max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address" validate:"max=500"`
}

func (r CreateAccountRequest) Validate() error {
	return validate.Struct(r)
}

func (r CreateAccountRequest) ToEntity(id string) entities.Account {
	return entities.Account{ID: id, FullName: r.FullName, Company: r.Company, Phone: r.Phone, Email: r.Email, Address: r.Address}
}

// UpgradeRequest carries the Mercado Pago payment body. The body may be sent
// bare or wrapped as {"mp_payload": {...}}; it is forwarded as raw JSON.
type UpgradeRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseUpgradePayload extracts the payment body from a raw request. An empty
// body yields "{}".
func ParseUpgradePayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
