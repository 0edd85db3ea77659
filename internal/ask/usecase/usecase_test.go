package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"catalog-assistant/internal/ask"
	"catalog-assistant/internal/catalog"
	"catalog-assistant/internal/router"
	"catalog-assistant/internal/summarizer"
	"catalog-assistant/pkg/log"
)

type fakeRepo struct {
	products  []catalog.Product
	suppliers []catalog.Supplier
	err       error

	lastNeedle string
}

func (f *fakeRepo) FindProductsByBrand(ctx context.Context, needle string) ([]catalog.Product, error) {
	f.lastNeedle = needle
	return f.products, f.err
}

func (f *fakeRepo) FindProductByName(ctx context.Context, needle string) (catalog.Product, error) {
	f.lastNeedle = needle
	if f.err != nil || len(f.products) == 0 {
		return catalog.Product{}, f.err
	}
	return f.products[0], nil
}

func (f *fakeRepo) FindSuppliersByCategory(ctx context.Context, needle string) ([]catalog.Supplier, error) {
	f.lastNeedle = needle
	return f.suppliers, f.err
}

func (f *fakeRepo) Ping(ctx context.Context) error { return f.err }

type fakeSummarizer struct {
	summary string
	err     error
	input   string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	f.input = text
	return f.summary, f.err
}

func strPtr(s string) *string { return &s }

func newUC(repo *fakeRepo, sum *fakeSummarizer, opts Options) *implUseCase {
	return New(log.NewNop(), repo, router.New(), sum, opts)
}

func TestRoute_ProductsByBrand(t *testing.T) {
	repo := &fakeRepo{products: []catalog.Product{{
		ID:       1,
		Name:     "Air Zoom",
		Brand:    strPtr("Nike"),
		Price:    decimal.NewNullDecimal(decimal.RequireFromString("49.99")),
		Category: strPtr("Shoes"),
	}}}
	uc := newUC(repo, &fakeSummarizer{}, Options{})

	out, err := uc.Route(context.Background(), ask.AskInput{Query: "Products under brand Nike"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != router.IntentProductsByBrand || len(out.Products) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if repo.lastNeedle != "nike" {
		t.Errorf("expected needle nike, got %q", repo.lastNeedle)
	}
}

func TestRoute_RepeatedQueriesAreIdentical(t *testing.T) {
	repo := &fakeRepo{products: []catalog.Product{
		{ID: 1, Name: "Air Zoom", Brand: strPtr("Nike"), Price: decimal.NewNullDecimal(decimal.RequireFromString("49.99"))},
		{ID: 2, Name: "Mystery Box", Brand: strPtr("Nike")},
	}}
	uc := newUC(repo, &fakeSummarizer{}, Options{})

	for _, query := range []string{"Products under brand Nike", "Details of product Air"} {
		first, err := uc.Route(context.Background(), ask.AskInput{Query: query})
		if err != nil {
			t.Fatalf("%s: first call: %v", query, err)
		}
		second, err := uc.Route(context.Background(), ask.AskInput{Query: query})
		if err != nil {
			t.Fatalf("%s: second call: %v", query, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: results differ:\n%+v\n%+v", query, first, second)
		}
	}
}

func TestRoute_ProductsByBrand_NotFound(t *testing.T) {
	uc := newUC(&fakeRepo{}, &fakeSummarizer{}, Options{})

	_, err := uc.Route(context.Background(), ask.AskInput{Query: "products under brand acme"})
	if !errors.Is(err, ask.ErrNoProductsForBrand) {
		t.Errorf("expected ErrNoProductsForBrand, got %v", err)
	}
}

func TestRoute_SuppliersProvide(t *testing.T) {
	repo := &fakeRepo{suppliers: []catalog.Supplier{
		{ID: 1, Name: "FunCo", ContactInfo: strPtr("fun@example.com"), ProductCategories: strPtr("Electronics, Toys")},
		{ID: 2, Name: "Quiet Ltd"},
	}}
	sum := &fakeSummarizer{summary: "FunCo and Quiet Ltd sell toys."}
	uc := newUC(repo, sum, Options{})

	out, err := uc.Route(context.Background(), ask.AskInput{Query: "Suppliers provide toys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != sum.summary {
		t.Errorf("unexpected summary %q", out.Summary)
	}

	want := "Supplier: FunCo, Contact: fun@example.com, Categories: Electronics, Toys\n" +
		"Supplier: Quiet Ltd, Contact: None, Categories: None"
	if sum.input != want {
		t.Errorf("summarizer input:\n got %q\nwant %q", sum.input, want)
	}
}

func TestRoute_SuppliersProvide_NotFound(t *testing.T) {
	sum := &fakeSummarizer{summary: "unused"}
	uc := newUC(&fakeRepo{}, sum, Options{})

	_, err := uc.Route(context.Background(), ask.AskInput{Query: "Suppliers provide electronics"})
	if !errors.Is(err, ask.ErrNoSuppliersForCategory) {
		t.Errorf("expected ErrNoSuppliersForCategory, got %v", err)
	}
	if sum.input != "" {
		t.Error("summarizer must not run without suppliers")
	}
}

func TestRoute_SuppliersProvide_SummarizerFailure(t *testing.T) {
	repo := &fakeRepo{suppliers: []catalog.Supplier{{ID: 1, Name: "FunCo"}}}

	uc := newUC(repo, &fakeSummarizer{err: summarizer.ErrUnavailable}, Options{})
	_, err := uc.Route(context.Background(), ask.AskInput{Query: "suppliers provide toys"})
	if !errors.Is(err, ask.ErrSummarizerUnavailable) || !errors.Is(err, summarizer.ErrUnavailable) {
		t.Errorf("expected ErrSummarizerUnavailable wrapping cause, got %v", err)
	}

	uc = newUC(repo, &fakeSummarizer{err: summarizer.ErrEmptySummary}, Options{FallbackToRawText: true})
	out, err := uc.Route(context.Background(), ask.AskInput{Query: "suppliers provide toys"})
	if err != nil {
		t.Fatalf("fallback must not fail: %v", err)
	}
	if out.Summary != "Supplier: FunCo, Contact: None, Categories: None" {
		t.Errorf("expected raw text fallback, got %q", out.Summary)
	}
}

func TestRoute_ProductDetails(t *testing.T) {
	repo := &fakeRepo{products: []catalog.Product{{ID: 7, Name: "Air Max"}}}
	uc := newUC(repo, &fakeSummarizer{}, Options{})

	out, err := uc.Route(context.Background(), ask.AskInput{Query: "Details of product Air Max"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Product.ID != 7 || repo.lastNeedle != "air max" {
		t.Errorf("unexpected output %+v, needle %q", out.Product, repo.lastNeedle)
	}
}

func TestRoute_ProductDetails_EmptyParameter(t *testing.T) {
	repo := &fakeRepo{products: []catalog.Product{{ID: 1, Name: "First"}}}
	uc := newUC(repo, &fakeSummarizer{}, Options{})

	out, err := uc.Route(context.Background(), ask.AskInput{Query: "Details of product "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastNeedle != "" {
		t.Errorf("expected empty needle, got %q", repo.lastNeedle)
	}
	if out.Product.ID != 1 {
		t.Errorf("expected first catalog row, got %+v", out.Product)
	}
}

func TestRoute_ProductDetails_NotFound(t *testing.T) {
	uc := newUC(&fakeRepo{}, &fakeSummarizer{}, Options{})

	_, err := uc.Route(context.Background(), ask.AskInput{Query: "details of product unicorn"})
	if !errors.Is(err, ask.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRoute_InvalidQuery(t *testing.T) {
	uc := newUC(&fakeRepo{}, &fakeSummarizer{}, Options{})

	for _, q := range []string{"what is the weather", ""} {
		_, err := uc.Route(context.Background(), ask.AskInput{Query: q})
		if !errors.Is(err, ask.ErrInvalidQuery) {
			t.Errorf("query %q: expected ErrInvalidQuery, got %v", q, err)
		}
	}
}

func TestRoute_CatalogFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newUC(repo, &fakeSummarizer{}, Options{})

	for _, q := range []string{"products under brand nike", "suppliers provide toys", "details of product x"} {
		_, err := uc.Route(context.Background(), ask.AskInput{Query: q})
		if !errors.Is(err, ask.ErrCatalogUnavailable) {
			t.Errorf("query %q: expected ErrCatalogUnavailable, got %v", q, err)
		}
	}
}
