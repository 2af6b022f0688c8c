package httperr

import (
	"log/slog"
	"net/http"

	"meetup-capture/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Detail carries the stable machine-readable code clients switch on.
type Detail struct {
	Code string `json:"code"`
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

func NewResponse(status int, msg, code string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	if code != "" {
		resp.Detail = &Detail{Code: code}
	}
	return resp
}

// AbortWithError keeps err on the gin context for the logging middleware; only msg
// and code reach the client. An empty code omits the detail object.
func AbortWithError(c *gin.Context, status int, err error, msg, code string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"status", status,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}

	resp := NewResponse(status, msg, code)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
