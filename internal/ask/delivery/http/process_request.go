package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds the ask request body. An absent, empty or malformed
// body is an empty query rather than an error.
func (h *handler) processAskReq(c *gin.Context) askReq {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "ask.delivery.http.processAskReq: treating body as empty query: %v", err)
		return askReq{}
	}
	return req
}
