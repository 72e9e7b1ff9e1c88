package netsim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// FollowPages fetches every page of a list endpoint, following "next" links
// until exhausted, and returns the combined results in page order. Endpoints
// that return a bare JSON array instead of a paginated envelope are treated
// as a single page.
//
// The "next" link is an absolute URL that already carries the original query
// parameters, so the caller-supplied query is only attached to the first
// request.
func FollowPages[T any](ctx context.Context, api Requester, path string, query url.Values) ([]T, error) {
	var all []T

	next := path

	for next != "" {
		body, err := api.Request(ctx, http.MethodGet, next, query, nil)
		if err != nil {
			return nil, err
		}

		query = nil

		items, nextLink, err := decodePage[T](body)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)
		next = nextLink
	}

	return all, nil
}

// PageIterator provides page-at-a-time iteration over a list endpoint for
// callers that do not want the full result set in memory.
type PageIterator[T any] struct {
	api   Requester
	next  string
	query url.Values
}

// NewPageIterator creates an iterator positioned before the first page.
func NewPageIterator[T any](api Requester, path string, query url.Values) *PageIterator[T] {
	return &PageIterator[T]{
		api:   api,
		next:  path,
		query: query,
	}
}

// HasMore reports whether another page is available.
func (it *PageIterator[T]) HasMore() bool {
	return it.next != ""
}

// NextPage fetches the next page of results. It returns an empty slice once
// the iterator is exhausted.
func (it *PageIterator[T]) NextPage(ctx context.Context) ([]T, error) {
	if it.next == "" {
		return nil, nil
	}

	body, err := it.api.Request(ctx, http.MethodGet, it.next, it.query, nil)
	if err != nil {
		return nil, err
	}

	it.query = nil

	items, nextLink, err := decodePage[T](body)
	if err != nil {
		return nil, err
	}

	it.next = nextLink

	return items, nil
}

// decodePage parses one list response body, accepting both the paginated
// envelope and a bare array.
func decodePage[T any](body []byte) (items []T, next string, err error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, "", fmt.Errorf("parsing list response: %w", err)
		}

		return items, "", nil
	}

	var page ListResponse[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, "", fmt.Errorf("parsing list response: %w", err)
	}

	if page.Next != nil {
		next = *page.Next
	}

	return page.Results, next, nil
}
