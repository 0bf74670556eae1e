package request

import (
	"fmt"
	"net/url"
	"strconv"
)

// ValidationError reports a malformed or missing filter field. The web
// layer maps it to a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid filter field %q: %s", e.Field, e.Reason)
}

// ProductFilter is a validated read-query request. MaxVolume and Count
// are required; everything else defaults to "no filtering".
type ProductFilter struct {
	MaxVolume        float64
	Count            int
	IncludeRecycling bool
	ExistsInStore    bool
	SiteID           string
	Category         string
}

// ParseProductFilter decodes a filter from URL query parameters and
// validates it. No normalization is applied to site_id or category.
func ParseProductFilter(values url.Values) (*ProductFilter, error) {
	filter := &ProductFilter{
		SiteID:   values.Get("site_id"),
		Category: values.Get("category"),
	}

	rawVolume := values.Get("max_volume")
	if rawVolume == "" {
		return nil, &ValidationError{Field: "max_volume", Reason: "required"}
	}
	maxVolume, err := strconv.ParseFloat(rawVolume, 64)
	if err != nil {
		return nil, &ValidationError{Field: "max_volume", Reason: "must be a number"}
	}
	filter.MaxVolume = maxVolume

	rawCount := values.Get("count")
	if rawCount == "" {
		return nil, &ValidationError{Field: "count", Reason: "required"}
	}
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		return nil, &ValidationError{Field: "count", Reason: "must be an integer"}
	}
	filter.Count = count

	if filter.IncludeRecycling, err = parseBool(values, "include_recycling"); err != nil {
		return nil, err
	}
	if filter.ExistsInStore, err = parseBool(values, "exists_in_store"); err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return filter, nil
}

// Validate checks the required numeric bounds. Callers constructing a
// ProductFilter directly run it before query compilation.
func (f *ProductFilter) Validate() error {
	if f.MaxVolume < 0 {
		return &ValidationError{Field: "max_volume", Reason: "must not be negative"}
	}
	if f.Count <= 0 {
		return &ValidationError{Field: "count", Reason: "must be positive"}
	}
	return nil
}

func parseBool(values url.Values, field string) (bool, error) {
	raw := values.Get(field)
	if raw == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &ValidationError{Field: field, Reason: "must be a boolean"}
	}
	return parsed, nil
}
