// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "hotel-admin-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform failure envelope: {"error": "<message>"} with a
// matching HTTP status.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends a success body through unchanged.
func JSON(c *gin.Context, status int, body interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, body)
}

// Error sends the uniform error envelope and aborts the chain.
func Error(c *gin.Context, status int, message string) {
	c.Abort()
	c.JSON(status, ErrorBody{Error: message})
}

// AuthRequired sends the fixed 401 body used whenever no valid session
// exists. The message is deliberately constant.
func AuthRequired(c *gin.Context) {
	Error(c, http.StatusUnauthorized, xerrors.ErrAuthRequired.Error())
}

// serverErrorMessage is the only thing a transport or parse failure ever
// surfaces; backend internals never reach the browser.
const serverErrorMessage = "server error"

// ProxyError maps a proxy-layer error onto the four failure categories.
// fallback is the endpoint-specific generic message used when the backend
// rejected the request without a usable detail string.
func ProxyError(c *gin.Context, err error, fallback string) {
	var upstream *xerrors.UpstreamError

	switch {
	case errors.Is(err, xerrors.ErrAuthRequired):
		AuthRequired(c)
	case errors.As(err, &upstream):
		msg := upstream.Message
		if msg == "" {
			msg = fallback
		}
		Error(c, upstream.StatusCode, msg)
	default:
		Error(c, http.StatusInternalServerError, serverErrorMessage)
	}
}
