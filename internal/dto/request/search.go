package request

import (
	"net/url"
	"strconv"
)

// SearchQuery mirrors the query parameters of GET /api/search.
type SearchQuery struct {
	Keyword  string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Size     string
	Color    string
	SortBy   string
	Page     int
	Limit    int
}

// ParseSearchQuery extracts search parameters from the request query string.
// Unparseable numeric values are treated as absent.
func ParseSearchQuery(values url.Values) SearchQuery {
	q := SearchQuery{
		Keyword:  values.Get("keyword"),
		Category: values.Get("category"),
		Size:     values.Get("size"),
		Color:    values.Get("color"),
		SortBy:   values.Get("sortBy"),
		Page:     1,
		Limit:    10,
	}

	if v := values.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinPrice = &f
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MaxPrice = &f
		}
	}

	switch values.Get("inStock") {
	case "true":
		t := true
		q.InStock = &t
	case "false":
		f := false
		q.InStock = &f
	}

	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.Page = n
		}
	}
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.Limit = n
		}
	}

	return q
}
