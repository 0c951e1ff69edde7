// Package listing implements the filter, search and pagination rules shared by
// every list endpoint.
package listing

import (
	"math"
	"strings"
)

const (
	// AllStatuses disables status filtering.
	AllStatuses = "All"
	// MaxPageSize caps page_size.
	MaxPageSize = 100
)

// Default page sizes per resource.
const (
	ProjectPageSize  = 5
	TaskPageSize     = 10
	DocumentPageSize = 5
	MemberPageSize   = 5
	AccountPageSize  = 5
	RolePageSize     = 10
	UnitPageSize     = 10
	CategoryPageSize = 5
	AuditPageSize    = 5
)

// Query describes a list request.
type Query struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

// Normalize clamps page and page size, falling back to defaultSize.
func (q Query) Normalize(defaultSize int) Query {
	q.Status = strings.TrimSpace(q.Status)
	if strings.EqualFold(q.Status, AllStatuses) {
		q.Status = ""
	}
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if maxPage := math.MaxInt / q.PageSize; q.Page > maxPage {
		q.Page = maxPage
	}
	return q
}

// Offset is the index of the first item on the page. It saturates at
// math.MaxInt instead of overflowing.
func (q Query) Offset() int {
	if q.Page <= 1 || q.PageSize <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PageSize
}

// MatchStatus reports whether status passes the filter.
func (q Query) MatchStatus(status string) bool {
	return q.Status == "" || q.Status == status
}

// MatchSearch reports whether any field contains the search term, ignoring case.
func (q Query) MatchSearch(fields ...string) bool {
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Page is one slice of a filtered list.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// TotalPages returns ceil(total/size).
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// NewPage builds page metadata around already sliced items.
func NewPage[T any](items []T, total int, q Query) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: TotalPages(total, q.PageSize),
	}
}

// Apply filters items with keep and returns the requested page.
// q must already be normalized.
func Apply[T any](items []T, q Query, keep func(T) bool) Page[T] {
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			filtered = append(filtered, it)
		}
	}
	return Paginate(filtered, q)
}

// Paginate slices items for q. Pages past the end are empty.
func Paginate[T any](items []T, q Query) Page[T] {
	total := len(items)
	start := q.Offset()
	if start >= total || q.PageSize <= 0 {
		return NewPage([]T{}, total, q)
	}
	end := total
	if q.PageSize < total-start {
		end = start + q.PageSize
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return NewPage(out, total, q)
}

// Map converts page items keeping the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
