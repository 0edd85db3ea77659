package http

import (
	"catalog-assistant/internal/ask"
	"catalog-assistant/internal/catalog"
)

// --- Request DTOs ---

type askReq struct {
	Query string `json:"query" example:"Products under brand Nike"`
}

func (r askReq) toInput() ask.AskInput {
	return ask.AskInput{Query: r.Query}
}

// --- Response DTOs ---

type productItemResp struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

type productDetailResp struct {
	Name        string   `json:"name"`
	Brand       *string  `json:"brand"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

type summaryResp struct {
	Summary string `json:"summary"`
}

func (h *handler) newProductListResp(products []catalog.Product) []productItemResp {
	items := make([]productItemResp, 0, len(products))
	for _, p := range products {
		items = append(items, productItemResp{
			Name:     p.Name,
			Price:    p.PriceFloat(),
			Category: p.Category,
		})
	}
	return items
}

func (h *handler) newProductDetailResp(p catalog.Product) productDetailResp {
	return productDetailResp{
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.PriceFloat(),
		Description: p.Description,
	}
}

func (h *handler) newSummaryResp(summary string) summaryResp {
	return summaryResp{Summary: summary}
}
