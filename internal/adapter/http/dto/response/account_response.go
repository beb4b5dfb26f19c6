package response

import (
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
)

type AccountResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Premium   bool      `json:"premium"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Company:   a.Company,
		Phone:     a.Phone,
		Email:     a.Email,
		Address:   a.Address,
		Premium:   a.Premium,
		CreatedAt: a.CreatedAt,
	}
}

type UpgradePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	AccountID string    `json:"account_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromUpgradePayment(p entities.UpgradePayment) UpgradePaymentResponse {
	return UpgradePaymentResponse{
		PaymentID:    p.ID,
		AccountID:    p.AccountID,
		Date:         p.Date,
		Status:       string(p.Status),
		Amount:       p.Amount,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

type UpgradeResponse struct {
	Payment UpgradePaymentResponse `json:"payment"`
	Account AccountResponse        `json:"account"`
}
