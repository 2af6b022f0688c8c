package httperr

import (
	"net/http"

	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/usecase/commands"
	"meetup-capture/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	err     error
	status  int
	code    string
	message string
}

// Order matters only where one error carries several marks; the first match wins.
var mappings = []mapping{
	{commands.ErrMeetupNotFound, http.StatusNotFound, "meetup_not_found", "Meetup not found"},
	{queries.ErrMeetupNotFound, http.StatusNotFound, "meetup_not_found", "Meetup not found"},
	{queries.ErrMeetupAccess, http.StatusNotFound, "meetup_not_found", "Meetup not found"},
	{commands.ErrNotParticipant, http.StatusForbidden, "not_participant", "User is not a participant of this meetup"},
	{commands.ErrNotCodeHolder, http.StatusForbidden, "not_code_holder", "User cannot show the code for this meetup"},
	{commands.ErrSelfVerification, http.StatusForbidden, "self_verification", "Code must be verified by the other party"},
	{commands.ErrMeetupAlreadyTerminal, http.StatusConflict, "meetup_terminal", "Meetup is already closed"},
	{commands.ErrInvalidMeetupState, http.StatusConflict, "invalid_state", "Meetup does not accept this operation now"},
	{commands.ErrPickupNotInProgress, http.StatusConflict, "pickup_not_in_progress", "Paired pickup is not in progress"},
	{commands.ErrAlreadyConsumed, http.StatusConflict, "already_consumed", "Code was already used"},
	{commands.ErrDuplicateMeetup, http.StatusConflict, "duplicate_meetup", "Meetup already exists for this transaction"},
	{commands.ErrCodeExpired, http.StatusGone, "expired", "Code expired"},
	{commands.ErrCodeMismatch, http.StatusUnprocessableEntity, "mismatch", "Code does not match"},
	{commands.ErrRateLimited, http.StatusTooManyRequests, "rate_limited", "Too many failed attempts"},
	{commands.ErrInvalidMeetup, http.StatusBadRequest, "invalid_meetup", "Invalid meetup"},
	{commands.ErrInvalidCodeType, http.StatusBadRequest, "invalid_code_type", "Invalid code type"},
	{commands.ErrInvalidCodeFormat, http.StatusBadRequest, "invalid_code_format", "Invalid code format"},
	{commands.ErrInvalidPaymentStatus, http.StatusBadRequest, "invalid_payment_status", "Invalid payment status"},
	{queries.ErrTransactionNotFound, http.StatusNotFound, "transaction_not_found", "Transaction not found"},
	{queries.ErrTransactionAccess, http.StatusNotFound, "transaction_not_found", "Transaction not found"},
	{payment.ErrTransactionNotFound, http.StatusNotFound, "transaction_not_found", "Transaction not found"},
	{payment.ErrTimeout, http.StatusGatewayTimeout, "payment_timeout", "Transaction service timed out"},
	{payment.ErrNetwork, http.StatusBadGateway, "payment_unavailable", "Transaction service unavailable"},
}

// AbortWithUseCaseError translates a usecase error into the response envelope.
// Unknown errors become a 500 without leaking their message.
func AbortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.err) {
			AbortWithError(c, m.status, err, m.message, m.code)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "internal")
}
