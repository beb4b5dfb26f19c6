package entities

import "fmt"

// FreeEstimateLimit is the number of saved estimates a free account may hold.
const FreeEstimateLimit = 5

// QuotaDenialReason explains a denied creation.
type QuotaDenialReason string

const QuotaFreeExceeded QuotaDenialReason = "free_quota_exceeded"

// QuotaExceededMessage is the user-facing text for a denied creation.
var QuotaExceededMessage = fmt.Sprintf("You've reached your limit of %d saved estimates. Upgrade for $%.2f/mo to save unlimited estimates.", FreeEstimateLimit, PremiumPrice)

// QuotaDecision is advisory: a denial never touches already-saved records.
type QuotaDecision struct {
	Allowed bool
	Reason  QuotaDenialReason
}

// CanCreate is consulted only when a save would add a new estimate.
func CanCreate(currentCount int, isPremium bool) QuotaDecision {
	if isPremium || currentCount < FreeEstimateLimit {
		return QuotaDecision{Allowed: true}
	}
	return QuotaDecision{Reason: QuotaFreeExceeded}
}

// QuotaStatus is the caller-facing summary of the quota gate.
type QuotaStatus struct {
	Count     int  `json:"count"`
	Limit     int  `json:"limit"`
	Premium   bool `json:"premium"`
	CanCreate bool `json:"can_create"`
}

func NewQuotaStatus(count int, isPremium bool) QuotaStatus {
	return QuotaStatus{
		Count:     count,
		Limit:     FreeEstimateLimit,
		Premium:   isPremium,
		CanCreate: CanCreate(count, isPremium).Allowed,
	}
}
