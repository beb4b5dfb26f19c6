package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PremiumPrice is the monthly premium plan amount charged on upgrade.
const PremiumPrice = 9.99

// UpgradePayment records a premium plan payment for an account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (account_id-index): account_id
//
// ProviderPayloadRaw keeps the gateway response body for audit; ProviderPayload
// is the parsed form kept for querying.
type UpgradePayment struct {
	ID        string        `json:"id"`
	AccountID string        `json:"account_id"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`
	Amount    float64       `json:"amount"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// PaymentStatusFromProvider maps gateway status strings onto PaymentStatus.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}
