package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-catalog/internal/dto/request"
	"product-catalog/internal/dto/response"

	"go.uber.org/zap"
)

// fakeSearchService records the suggestion arguments it was called with.
type fakeSearchService struct {
	gotTerm  string
	gotLimit int
}

func (f *fakeSearchService) Search(ctx context.Context, query request.SearchQuery) (*response.SearchResponse, error) {
	return &response.SearchResponse{Products: []response.ProductResponse{}}, nil
}

func (f *fakeSearchService) Suggest(ctx context.Context, term string, limit int) ([]response.Suggestion, error) {
	f.gotTerm = term
	f.gotLimit = limit
	return []response.Suggestion{}, nil
}

func (f *fakeSearchService) SearchVariants(ctx context.Context, size, color string, inStock bool) ([]response.VariantMatch, error) {
	return []response.VariantMatch{}, nil
}

func TestSuggestionsReadsTermAndLimitParams(t *testing.T) {
	service := &fakeSearchService{}
	handler := NewSearchHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search/suggestions?term=shi&limit=7", nil)
	rec := httptest.NewRecorder()

	handler.Suggestions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if service.gotTerm != "shi" {
		t.Errorf("term = %q, want shi", service.gotTerm)
	}
	if service.gotLimit != 7 {
		t.Errorf("limit = %d, want 7", service.gotLimit)
	}
}

func TestSuggestionsDefaultsLimit(t *testing.T) {
	service := &fakeSearchService{}
	handler := NewSearchHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/search/suggestions?term=shi", nil)
	rec := httptest.NewRecorder()

	handler.Suggestions(rec, req)

	if service.gotLimit != 5 {
		t.Errorf("limit = %d, want default 5", service.gotLimit)
	}
}
