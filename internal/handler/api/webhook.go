package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"meetup-capture/internal/domain/payment"
	reqdto "meetup-capture/internal/handler/dto/request"
	"meetup-capture/internal/handler/httperr"
	"meetup-capture/internal/pkg/config"
	"meetup-capture/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const webhookSecretHeader = "X-Webhook-Secret"

var errBadWebhookSecret = errors.New("webhook secret mismatch")

type PaymentWebhookHandler struct {
	meetups commands.MeetupCommands
	secret  []byte
}

func NewPaymentWebhookHandler(meetups commands.MeetupCommands, cfg config.Config) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{meetups: meetups, secret: []byte(cfg.Payment.WebhookSecret)}
}

// @Summary Payment status webhook
// @Description Transaction service callback; settles verified sale meetups of the transaction
// @Tags webhooks
// @Accept json
// @Param X-Webhook-Secret header string true "Shared secret"
// @Param request body reqdto.PaymentWebhookRequest true "Transaction status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *PaymentWebhookHandler) Receive(c *gin.Context) {
	// an unset secret disables the endpoint
	got := []byte(c.GetHeader(webhookSecretHeader))
	if len(h.secret) == 0 || subtle.ConstantTimeCompare(got, h.secret) != 1 {
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadWebhookSecret, "Unauthorized", "")
		return
	}
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", "invalid_request")
		return
	}
	status, err := payment.NewStatus(req.PaymentStatus)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment status", "invalid_payment_status")
		return
	}
	if err := h.meetups.ApplyTransactionStatus(c.Request.Context(), req.TransactionID, status); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
