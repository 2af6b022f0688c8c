package api

import (
	"net/http"

	resdto "meetup-capture/internal/handler/dto/response"
	"meetup-capture/internal/handler/httperr"
	"meetup-capture/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	q queries.MeetupQueries
}

func NewTransactionHandler(q queries.MeetupQueries) *TransactionHandler {
	return &TransactionHandler{q: q}
}

// @Summary Get transaction status
// @Description Current payment status from the Transaction service, for meetup participants
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, userID, ok := pathIDAndUser(c)
	if !ok {
		return
	}
	txn, err := h.q.GetTransactionStatus(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransaction(txn))
}
