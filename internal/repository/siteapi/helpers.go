package siteapi

import (
	"net/url"
	"strconv"

	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}

// rangeQuery sends from/to only when both are set, as the backend ignores a half-open range.
func rangeQuery(rng calendar.Range) url.Values {
	if !rng.Bounded() {
		return nil
	}
	return url.Values{
		"from": {rng.From.String()},
		"to":   {rng.To.String()},
	}
}

// nonNil turns a 204 or null reply into an empty list.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
