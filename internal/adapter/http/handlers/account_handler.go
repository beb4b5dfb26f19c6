package handlers

import (
	"errors"
	"net/http"

	request "github.com/kaosom/zipquote/internal/adapter/http/dto/request"
	response "github.com/kaosom/zipquote/internal/adapter/http/dto/response"
	"github.com/kaosom/zipquote/internal/adapter/http/middleware"
	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/usecase"
	"github.com/kaosom/zipquote/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AccountHandler serves the caller's profile and the premium upgrade.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
	log     *logrus.Entry
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc, log: logging.Component("account_handler")}
}

// CreateAccount godoc
// @Summary  Create the caller's profile
// @Tags     users
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body     request.CreateAccountRequest true "Profile"
// @Success  201  {object} response.AccountResponse
// @Failure  409  {object} pkg.HTTPError
// @Router   /users [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var payload request.CreateAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Validate() != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAccount(c.Request.Context(), payload.ToEntity(middleware.UserID(c)))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAccount(created))
}

// GetMe godoc
// @Summary  Get the caller's profile
// @Tags     users
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.AccountResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /users/me [get]
func (h *AccountHandler) GetMe(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(a))
}

// Upgrade godoc
// @Summary  Pay for premium and lift the free quota
// @Tags     users
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body     request.UpgradeRequest false "Mercado Pago payment body"
// @Success  200  {object} response.UpgradeResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  409  {object} pkg.HTTPError
// @Router   /users/me/upgrade [post]
func (h *AccountHandler) Upgrade(c *gin.Context) {
	userID := middleware.UserID(c)
	log := h.log.WithField("user_id", userID)

	raw, err := c.GetRawData()
	if err != nil {
		h.fail(c, err)
		return
	}
	payload, err := request.ParseUpgradePayload(raw)
	if err != nil {
		log.WithError(err).Info("invalid upgrade payload")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.UpgradeToPremium(c.Request.Context(), userID, payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	log.WithField("payment_id", res.Payment.ID).WithField("status", res.Payment.Status).Info("upgrade processed")

	c.JSON(http.StatusOK, response.UpgradeResponse{
		Payment: response.FromUpgradePayment(res.Payment),
		Account: response.FromAccount(res.Account),
	})
}

func (h *AccountHandler) fail(c *gin.Context, err error) {
	appErr := mapAccountError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.WithField("user_id", middleware.UserID(c)).WithError(err).Error("account request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccount), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrAccountExists):
		return pkg.NewDomainErrorSimple("ACCOUNT_ALREADY_EXISTS", "Account already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyPremium):
		return pkg.NewDomainErrorSimple("ALREADY_PREMIUM", "Account is already premium", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
