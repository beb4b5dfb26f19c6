package entities

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Size limits shared by the device and the API, so anything a device can
// save is also accepted on upload.
const (
	MaxIDLength      = 64
	MaxNameLength    = 200
	MaxPhoneLength   = 50
	MaxAddressLength = 500
	MaxItems         = 500
)

type lengthCheck struct {
	field string
	value string
	max   int
}

// Validate enforces the fields required for persistence (both party names)
// and the size limits.
func Validate(e Estimate) error {
	if strings.TrimSpace(e.Contractor.Name) == "" {
		return &ValidationError{Reason: ValidationMissingContractorName}
	}
	if strings.TrimSpace(e.Client.Name) == "" {
		return &ValidationError{Reason: ValidationMissingClientName}
	}
	if len(e.Items) > MaxItems {
		return &ValidationError{Reason: ValidationTooManyItems}
	}

	checks := []lengthCheck{{"id", e.ID, MaxIDLength}}
	checks = append(checks, partyChecks("contractor", e.Contractor)...)
	checks = append(checks, partyChecks("client", e.Client)...)
	for i, it := range e.Items {
		checks = append(checks,
			lengthCheck{fmt.Sprintf("items[%d].id", i), it.ID, MaxIDLength},
			lengthCheck{fmt.Sprintf("items[%d].name", i), it.Name, MaxNameLength},
		)
	}
	for _, c := range checks {
		if utf8.RuneCountInString(c.value) > c.max {
			return &ValidationError{Reason: ValidationFieldTooLong, Field: c.field}
		}
	}
	return nil
}

func partyChecks(prefix string, p Party) []lengthCheck {
	return []lengthCheck{
		{prefix + ".name", p.Name, MaxNameLength},
		{prefix + ".company", p.Company, MaxNameLength},
		{prefix + ".email", p.Email, MaxNameLength},
		{prefix + ".phone", p.Phone, MaxPhoneLength},
		{prefix + ".address", p.Address, MaxAddressLength},
	}
}

// RequireItems is an optional policy for callers that refuse empty estimates.
func RequireItems(e Estimate) error {
	if len(e.Items) == 0 {
		return &ValidationError{Reason: ValidationNoItems}
	}
	return nil
}
