package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-assistant/internal/router"
	"catalog-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask a catalog question
// @Description Classifies the query by trigger phrase ("products under brand", "suppliers provide",
// @Description "details of product") and answers from the catalog. Supplier answers are summarized
// @Description by a generative model and are not deterministic.
// @Tags        Ask
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Natural language query"
// @Description Success bodies: ProductsByBrand returns []productItemResp, SuppliersProvide returns
// @Description summaryResp, ProductDetails returns productDetailResp.
// @Success     200 {array}  productItemResp "OK"
// @Failure     400 {object} response.ErrorBody "Invalid query"
// @Failure     404 {object} response.ErrorBody "No matching products or suppliers"
// @Failure     429 {object} response.ErrorBody "Too many requests"
// @Failure     500 {object} response.ErrorBody "Internal server error"
// @Failure     503 {object} response.ErrorBody "Summarization service unavailable"
// @Router      /api/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processAskReq(c)

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		if isExpected(err) {
			h.l.Infof(ctx, "uc.Route: %v", err)
		} else {
			h.l.Errorf(ctx, "uc.Route: %v", err)
		}
		response.Error(c, h.mapError(err))
		return
	}

	switch output.Intent {
	case router.IntentProductsByBrand:
		response.Raw(c, http.StatusOK, h.newProductListResp(output.Products))
	case router.IntentSuppliersProvide:
		response.Raw(c, http.StatusOK, h.newSummaryResp(output.Summary))
	case router.IntentProductDetails:
		response.Raw(c, http.StatusOK, h.newProductDetailResp(output.Product))
	default:
		response.Error(c, errInvalidQuery)
	}
}
