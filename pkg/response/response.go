package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "fanhub-webhooks/pkg/errors"
)

// NewOKResp returns a success body wrapping data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Accepted sends 202 JSON with data.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, NewOKResp(data))
}

// Fail sends an error body with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Resp{Error: message})
}

// Error renders err. HTTPErrors keep their status, message and details;
// anything else becomes a generic 500 so internals do not leak.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.AbortWithStatusJSON(httpErr.Code, Resp{
			Error:   httpErr.Message,
			Details: httpErr.Details,
		})
		return
	}
	InternalError(c)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// Unauthorized sends 401 with message.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = MessageUnauthorized
	}
	Fail(c, http.StatusUnauthorized, message)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Fail(c, http.StatusForbidden, MessageForbidden)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Fail(c, http.StatusTooManyRequests, MessageRateLimited)
}

// MethodNotAllowed sends 405 response. Usable directly as gin's NoMethod handler.
func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed, MessageMethodNotAllowed)
}

// NotFound sends 404 response. Usable directly as gin's NoRoute handler.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, MessageNotFound)
}
