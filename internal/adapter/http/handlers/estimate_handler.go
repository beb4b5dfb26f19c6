package handlers

import (
	"errors"
	"net/http"
	"time"

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

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the account-scoped estimate collection of the caller.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *logrus.Entry
	now     func() time.Time
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, log: logging.Component("estimate_handler"), now: time.Now}
}

// ListEstimates godoc
// @Summary  List the caller's estimates
// @Tags     estimates
// @Produce  json
// @Security Bearer
// @Success  200 {array}  response.EstimateResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetEstimate godoc
// @Summary  Get one estimate
// @Tags     estimates
// @Produce  json
// @Security Bearer
// @Param    id  path     string true "Estimate id"
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// UpsertEstimate godoc
// @Summary  Create or replace an estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body     request.EstimateRequest true "Estimate"
// @Success  200  {object} response.EstimateResponse "updated"
// @Success  201  {object} response.EstimateResponse "created"
// @Failure  400  {object} pkg.HTTPError
// @Failure  402  {object} pkg.HTTPError
// @Router   /estimates [post]
func (h *EstimateHandler) UpsertEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errInvalidEstimatePayload.Code,
			"message": errInvalidEstimatePayload.Message,
			"fields":  request.FieldErrors(err),
		})
		return
	}

	saved, created, err := h.usecase.Save(c.Request.Context(), middleware.UserID(c), payload.ToEntity(h.now()))
	if err != nil {
		h.fail(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromEstimate(saved))
}

// DeleteEstimate godoc
// @Summary  Delete an estimate and its items
// @Tags     estimates
// @Security Bearer
// @Param    id  path string true "Estimate id"
// @Success  200
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// GetQuota godoc
// @Summary  Free-tier quota of the caller
// @Tags     estimates
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.QuotaResponse
// @Router   /quota [get]
func (h *EstimateHandler) GetQuota(c *gin.Context) {
	q, err := h.usecase.Quota(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuota(q))
}

func (h *EstimateHandler) fail(c *gin.Context, err error) {
	appErr := mapEstimateError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.WithField("user_id", middleware.UserID(c)).WithError(err).Error("estimate request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		msg := string(ve.Reason)
		if ve.Field != "" {
			msg += ": " + ve.Field
		}
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", msg, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	case entities.IsRemoteKind(err, entities.RemoteUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Estimate belongs to another account", http.StatusForbidden)
	case errors.Is(err, entities.ErrFreeQuotaExceeded):
		return pkg.NewDomainErrorSimple("FREE_QUOTA_EXCEEDED", entities.QuotaExceededMessage, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case entities.IsRemoteKind(err, entities.RemoteUnreachable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Estimate store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
