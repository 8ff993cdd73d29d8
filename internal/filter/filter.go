// Package filter narrows static collections for list views: an optional
// category equality pre-filter followed by a case-insensitive substring search.
package filter

import "strings"

// All is the category sentinel that disables category narrowing.
const All = "all"

// Field extracts one searchable string from an item.
type Field[T any] func(T) string

// AnyOf adapts a multi-valued field (tags, tech stack, skills) to a Field.
// The values are joined with a newline so a query cannot match across two
// adjacent values.
func AnyOf[T any](values func(T) []string) Field[T] {
	return func(item T) string {
		return strings.Join(values(item), "\n")
	}
}

// Query is the combined narrowing applied by a list view.
type Query struct {
	Category string
	Text     string
}

// Text keeps the items where any field contains query, ignoring case. An empty
// query keeps everything. Input order is preserved and items is not modified.
// With no fields, a non-empty query matches nothing.
func Text[T any](items []T, query string, fields ...Field[T]) []T {
	if query == "" {
		return clone(items)
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAny(item, needle, fields) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAny[T any](item T, needle string, fields []Field[T]) bool {
	for _, field := range fields {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

// Category keeps the items whose field equals value. An empty value or All
// keeps everything; a category absent from the data yields no matches.
func Category[T any](items []T, value string, field Field[T]) []T {
	if value == "" || value == All || field == nil {
		return clone(items)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if field(item) == value {
			out = append(out, item)
		}
	}
	return out
}

// Apply runs the category pre-filter and then the text search. Both steps are
// stable filters, so their order does not affect the result.
func Apply[T any](items []T, q Query, category Field[T], fields ...Field[T]) []T {
	return Text(Category(items, q.Category, category), q.Text, fields...)
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
