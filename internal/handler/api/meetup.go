package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"meetup-capture/internal/domain/payment"
	reqdto "meetup-capture/internal/handler/dto/request"
	resdto "meetup-capture/internal/handler/dto/response"
	"meetup-capture/internal/handler/httperr"
	"meetup-capture/internal/handler/middleware"
	"meetup-capture/internal/usecase/commands"
	"meetup-capture/internal/usecase/queries"
	"meetup-capture/internal/usecase/watcher"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthorized  = errors.New("missing authenticated user")
	errNoTransaction = errors.New("meetup has no transaction")
)

type CaptureWatcher interface {
	Watch(ctx context.Context, transactionID uuid.UUID, cb watcher.Callbacks) *watcher.Handle
}

type MeetupHandler struct {
	meetups      commands.MeetupCommands
	verification commands.VerificationCommands
	q            queries.MeetupQueries
	watcher      CaptureWatcher
}

func NewMeetupHandler(
	meetups commands.MeetupCommands,
	verification commands.VerificationCommands,
	q queries.MeetupQueries,
	w CaptureWatcher,
) *MeetupHandler {
	return &MeetupHandler{
		meetups:      meetups,
		verification: verification,
		q:            q,
		watcher:      w,
	}
}

// @Summary Create meetup
// @Description Register a sale, pickup or return meetup between two parties
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMeetupRequest true "Create meetup request"
// @Success 201 {object} resdto.MeetupResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/meetups [post]
func (h *MeetupHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", "")
		return
	}
	var req reqdto.CreateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", "invalid_request")
		return
	}
	result, err := h.meetups.CreateMeetup(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondWithMeetup(c, http.StatusCreated, userID, result.MeetupID)
}

// @Summary Get meetup
// @Description Meetup status and the active code's countdown, visible to participants only
// @Tags meetups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Success 200 {object} resdto.MeetupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/meetups/{id} [get]
func (h *MeetupHandler) Get(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	h.respondWithMeetup(c, http.StatusOK, userID, id)
}

// @Summary Generate verification code
// @Description Issue a fresh PIN or QR code; any previous open code stops validating
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Param request body reqdto.GenerateCodeRequest true "Code type"
// @Success 201 {object} resdto.GeneratedCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/meetups/{id}/codes [post]
func (h *MeetupHandler) GenerateCode(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	var req reqdto.GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", "invalid_request")
		return
	}
	code, err := h.verification.GenerateCode(c.Request.Context(), commands.GenerateCodeRequest{
		MeetupID:    id,
		CodeType:    req.CodeType,
		RequestedBy: userID,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, resdto.FromGeneratedCode(code))
}

// @Summary Verify code
// @Description Submit the code shown by the other party
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Param request body reqdto.VerifyCodeRequest true "Code value"
// @Success 200 {object} resdto.VerificationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/meetups/{id}/verify [post]
func (h *MeetupHandler) Verify(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", "invalid_request")
		return
	}
	result, err := h.verification.VerifyCode(c.Request.Context(), commands.VerifyCodeRequest{
		MeetupID:    id,
		CodeValue:   req.CodeValue,
		SubmittedBy: userID,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationResult(result))
}

// @Summary Capture events
// @Description Server-sent events while the meetup's payment capture settles.
// @Description Emits "status" events, then exactly one of "captured", "failed" or "timeout".
// @Tags meetups
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Meetup ID"
// @Success 200 {object} resdto.CaptureEvent
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/meetups/{id}/capture-events [get]
func (h *MeetupHandler) CaptureEvents(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	view, err := h.q.GetByID(ctx, userID, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	if view.TransactionID == nil {
		httperr.AbortWithError(c, http.StatusConflict, errNoTransaction, "Meetup has no transaction", "no_transaction")
		return
	}
	txID := *view.TransactionID

	type sse struct {
		name string
		data resdto.CaptureEvent
		last bool
	}
	// status events are dropped rather than block the watch; the last slot is kept
	// for the single terminal event
	events := make(chan sse, 32)
	emit := func(e sse) {
		if !e.last && len(events) >= cap(events)-1 {
			return
		}
		events <- e
	}
	settle := func(status payment.Status) {
		// the meetup must settle even if the client has gone away
		if _, err := h.meetups.ApplyPaymentStatus(context.WithoutCancel(ctx), id, status); err != nil {
			slog.Warn("apply payment status from watcher failed", "meetup_id", id, "error", err.Error())
		}
	}

	handle := h.watcher.Watch(ctx, txID, watcher.Callbacks{
		OnStatus: func(s payment.Status) {
			emit(sse{name: "status", data: resdto.CaptureEvent{TransactionID: txID, PaymentStatus: s.String()}})
		},
		OnCaptured: func() {
			settle(payment.StatusCaptured)
			emit(sse{name: "captured", data: resdto.CaptureEvent{TransactionID: txID, Outcome: watcher.OutcomeCaptured.String()}, last: true})
		},
		OnFailed: func() {
			settle(payment.StatusFailed)
			emit(sse{name: "failed", data: resdto.CaptureEvent{TransactionID: txID, Outcome: watcher.OutcomeFailed.String()}, last: true})
		},
		OnTimeout: func() {
			emit(sse{name: "timeout", data: resdto.CaptureEvent{TransactionID: txID, Outcome: watcher.OutcomeTimedOut.String()}, last: true})
		},
	})
	defer handle.Cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(_ io.Writer) bool {
		select {
		case e := <-events:
			c.SSEvent(e.name, e.data)
			return !e.last
		case <-handle.Done():
			// flush whatever the final poll produced
			for {
				select {
				case e := <-events:
					c.SSEvent(e.name, e.data)
					if e.last {
						return false
					}
				default:
					return false
				}
			}
		case <-ctx.Done():
			return false
		}
	})
}

func (h *MeetupHandler) respondWithMeetup(c *gin.Context, status int, userID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromMeetupView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", "")
		return
	}
	c.JSON(status, resp)
}

func pathIDAndUser(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", "invalid_id")
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", "")
		return uuid.Nil, uuid.Nil, false
	}
	return id, userID, true
}
