package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "catalog-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unavailable sends 503 with data wrapped in Resp.
func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   MessageUnavailable,
		Data:      data,
	})
}

// Raw sends data as-is, without the Resp envelope.
func Raw(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error sends {"error": message} with the status carried by err.
// Errors that are not *pkgErrors.HTTPError become a 500 with a generic message.
func Error(c *gin.Context, err error) {
	httpErr := pkgErrors.AsHTTPError(err)
	c.JSON(httpErr.StatusCode, ErrorBody{Error: httpErr.Message})
}

// AbortError is Error followed by aborting the handler chain, for middleware.
func AbortError(c *gin.Context, err error) {
	httpErr := pkgErrors.AsHTTPError(err)
	c.AbortWithStatusJSON(httpErr.StatusCode, ErrorBody{Error: httpErr.Message})
}

// InternalError aborts with the generic 500 body; the panic recovery handler uses it.
func InternalError(c *gin.Context) {
	AbortError(c, pkgErrors.ErrInternalServerError)
}
