package search

import (
	"math"

	"github.com/Hashimp6/broperty/internal/model"
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Skip is the number of ranked items preceding the page.
// It saturates at math.MaxInt for page numbers too large to address.
func (p Page) Skip() int {
	if p.Number < 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Pages returns ceil(total / Size).
func (p Page) Pages(total int) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}

// Window slices the page out of a fully ranked sequence.
// A page past the end yields an empty, non-nil slice.
func Window[T any](p Page, items []T) []T {
	start := p.Skip()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) || end < start {
		end = len(items)
	}
	return items[start:end]
}

// Result is the response body of a property search.
type Result struct {
	Properties []model.Property `json:"properties"`
	Page       int              `json:"page"`
	Pages      int              `json:"pages"`
	Total      int              `json:"total"`
}

// NewResult assembles page metadata around a window of properties.
func NewResult(p Page, items []model.Property, total int) *Result {
	if items == nil {
		items = []model.Property{}
	}
	return &Result{
		Properties: items,
		Page:       p.Number,
		Pages:      p.Pages(total),
		Total:      total,
	}
}
