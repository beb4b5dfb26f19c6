package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/infrastructure/payments"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound                = errors.New("account not found")
	ErrInvalidAccount                 = errors.New("invalid account")
	ErrAlreadyPremium                 = errors.New("account already premium")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// UpgradeResult is the outcome of a premium upgrade attempt. Account reflects
// the premium flag after the payment was processed.
type UpgradeResult struct {
	Payment entities.UpgradePayment
	Account entities.Account
}

// IAccountUseCase manages account profiles and the premium upgrade.
type IAccountUseCase interface {
	CreateAccount(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	UpgradeToPremium(ctx context.Context, accountID string, paymentPayload json.RawMessage) (UpgradeResult, error)
	ListPayments(ctx context.Context, accountID string) ([]entities.UpgradePayment, error)
}

type AccountUseCase struct {
	accounts interfaces.IAccountRepository
	payments interfaces.IUpgradePaymentRepository
	gateway  interfaces.IPaymentGateway
	log      *logrus.Entry
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(accounts interfaces.IAccountRepository, payments interfaces.IUpgradePaymentRepository, gateway interfaces.IPaymentGateway) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, payments: payments, gateway: gateway, log: logging.Component("accounts")}
}

// CreateAccount stores the profile of an identity issued by the auth provider.
// New accounts always start on the free plan.
func (u *AccountUseCase) CreateAccount(ctx context.Context, a entities.Account) (entities.Account, error) {
	a.ID = strings.TrimSpace(a.ID)
	a.FullName = strings.TrimSpace(a.FullName)
	a.Company = strings.TrimSpace(a.Company)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Email = strings.TrimSpace(a.Email)
	a.Address = strings.TrimSpace(a.Address)
	if a.ID == "" || a.FullName == "" {
		return entities.Account{}, ErrInvalidAccount
	}
	a.Premium = false
	a.CreatedAt = time.Now().UTC()

	created, err := u.accounts.Create(ctx, a)
	if err != nil {
		if !errors.Is(err, entities.ErrAccountExists) {
			u.log.WithField("user_id", a.ID).WithError(err).Error("create account failed")
		}
		return entities.Account{}, err
	}
	return created, nil
}

func (u *AccountUseCase) GetByID(ctx context.Context, id string) (entities.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Account{}, ErrInvalidUserID
	}
	a, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, err
	}
	if a.ID == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (u *AccountUseCase) ListPayments(ctx context.Context, accountID string) ([]entities.UpgradePayment, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, ErrInvalidUserID
	}
	return u.payments.ListByAccountID(ctx, accountID)
}

// UpgradeToPremium charges PremiumPrice through the payment gateway, records
// the payment and flips the premium flag once the provider approves it.
// The amount always comes from PremiumPrice, never from the caller.
func (u *AccountUseCase) UpgradeToPremium(ctx context.Context, accountID string, payload json.RawMessage) (UpgradeResult, error) {
	log := u.log.WithField("user_id", accountID)
	mockMode := payments.MockModeEnabled()

	acct, err := u.GetByID(ctx, accountID)
	if err != nil {
		return UpgradeResult{}, err
	}
	if acct.Premium {
		return UpgradeResult{}, ErrAlreadyPremium
	}
	if u.gateway == nil {
		return UpgradeResult{}, ErrPaymentGatewayNotConfigured
	}

	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return UpgradeResult{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !mockMode {
			return UpgradeResult{}, ErrInvalidPaymentPayload
		}
		req = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(req, "payment_method_id") {
		log.Info("upgrade payload without payment_method_id")
		return UpgradeResult{}, ErrInvalidPaymentPayload
	}
	ensurePayer(req, acct.Email)
	if !mockMode && !hasPayer(req) {
		log.Info("upgrade payload without payer")
		return UpgradeResult{}, ErrInvalidPaymentPayload
	}
	req["external_reference"] = acct.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("zipquote premium for %s", acct.ID)
	}
	req["transaction_amount"] = entities.PremiumPrice

	body, err := json.Marshal(req)
	if err != nil {
		return UpgradeResult{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.WithError(err).Error("payment gateway failed")
		return UpgradeResult{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("provider response is not a json object")
	}

	p := entities.UpgradePayment{
		ID:                 providerID,
		AccountID:          acct.ID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		Amount:             entities.PremiumPrice,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.WithField("payment_id", p.ID).WithError(err).Error("recording payment failed")
		return UpgradeResult{}, err
	}

	if created.Status != entities.PaymentStatusApproved {
		log.WithField("payment_id", created.ID).WithField("status", created.Status).Info("payment not approved, plan unchanged")
		return UpgradeResult{Payment: created, Account: acct}, nil
	}

	updated, err := u.accounts.SetPremium(ctx, acct.ID, true)
	if err != nil {
		log.WithField("payment_id", created.ID).WithError(err).Error("payment approved but premium flag not set")
		return UpgradeResult{}, err
	}
	if updated.ID == "" {
		return UpgradeResult{}, ErrAccountNotFound
	}
	log.WithField("payment_id", created.ID).Info("account upgraded to premium")
	return UpgradeResult{Payment: created, Account: updated}, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayer fills payer.email from the account, then from the sandbox
// settings, when the caller sent neither an id nor an email.
func ensurePayer(m map[string]any, accountEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case strings.TrimSpace(accountEmail) != "":
		payer["email"] = strings.TrimSpace(accountEmail)
	case strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")) != "":
		payer["email"] = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	case strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-"):
		payer["email"] = "test_user_br@testuser.com"
	}
}

// classifyGatewayError maps provider error bodies onto sentinels the HTTP layer
// understands. Unknown failures are returned unchanged.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
