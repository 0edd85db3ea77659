package usecase

import (
	"context"
	"fmt"

	"catalog-assistant/internal/ask"
	"catalog-assistant/internal/router"
)

// Route classifies the query and dispatches to the matching catalog lookup.
func (uc *implUseCase) Route(ctx context.Context, input ask.AskInput) (ask.AskOutput, error) {
	cls := uc.router.Classify(input.Query)
	uc.l.Debugf(ctx, "uc.Route: intent=%s parameter=%q", cls.Intent, cls.Parameter)

	switch cls.Intent {
	case router.IntentProductsByBrand:
		return uc.productsByBrand(ctx, cls.Parameter)
	case router.IntentSuppliersProvide:
		return uc.suppliersProvide(ctx, cls.Parameter)
	case router.IntentProductDetails:
		return uc.productDetails(ctx, cls.Parameter)
	default:
		return ask.AskOutput{Intent: router.IntentUnrecognized}, ask.ErrInvalidQuery
	}
}

func (uc *implUseCase) productsByBrand(ctx context.Context, brand string) (ask.AskOutput, error) {
	products, err := uc.repo.FindProductsByBrand(ctx, brand)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Route FindProductsByBrand: %v", err)
		return ask.AskOutput{}, fmt.Errorf("%w: %w", ask.ErrCatalogUnavailable, err)
	}
	if len(products) == 0 {
		return ask.AskOutput{}, ask.ErrNoProductsForBrand
	}

	return ask.AskOutput{
		Intent:   router.IntentProductsByBrand,
		Products: products,
	}, nil
}

func (uc *implUseCase) suppliersProvide(ctx context.Context, category string) (ask.AskOutput, error) {
	suppliers, err := uc.repo.FindSuppliersByCategory(ctx, category)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Route FindSuppliersByCategory: %v", err)
		return ask.AskOutput{}, fmt.Errorf("%w: %w", ask.ErrCatalogUnavailable, err)
	}
	if len(suppliers) == 0 {
		return ask.AskOutput{}, ask.ErrNoSuppliersForCategory
	}

	text := supplierText(suppliers)
	summary, err := uc.sum.Summarize(ctx, text)
	if err != nil {
		if !uc.opts.FallbackToRawText {
			uc.l.Errorf(ctx, "uc.Route Summarize: %v", err)
			return ask.AskOutput{}, fmt.Errorf("%w: %w", ask.ErrSummarizerUnavailable, err)
		}
		uc.l.Warnf(ctx, "uc.Route Summarize failed, returning raw supplier text: %v", err)
		summary = text
	}

	return ask.AskOutput{
		Intent:  router.IntentSuppliersProvide,
		Summary: summary,
	}, nil
}

func (uc *implUseCase) productDetails(ctx context.Context, name string) (ask.AskOutput, error) {
	product, err := uc.repo.FindProductByName(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Route FindProductByName: %v", err)
		return ask.AskOutput{}, fmt.Errorf("%w: %w", ask.ErrCatalogUnavailable, err)
	}
	if product.ID == 0 {
		return ask.AskOutput{}, ask.ErrProductNotFound
	}

	return ask.AskOutput{
		Intent:  router.IntentProductDetails,
		Product: product,
	}, nil
}
