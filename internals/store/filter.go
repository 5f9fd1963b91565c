// file: internals/store/filter.go
package store

import "strings"

// Predicate adalah fungsi boolean murni atas satu record.
type Predicate[T any] func(T) bool

// Sentinel filter "tanpa constraint".
const MatchAll = "all"

func matchEverything[T any](T) bool { return true }

// And menggabungkan predicate dengan logika AND. Predicate nil di-skip,
// set kosong berarti match everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return matchEverything[T]
	}
	return func(rec T) bool {
		for _, p := range active {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// Filter menerapkan predicate ke sequence dan mengembalikan slice baru.
func Filter[T any](records []T, pred Predicate[T]) []T {
	if pred == nil {
		pred = matchEverything[T]
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// TextSearch: substring match case-insensitive atas gabungan field.
// Query kosong = match everything.
func TextSearch[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	return func(rec T) bool {
		haystack := strings.ToLower(strings.Join(fields(rec), " "))
		return strings.Contains(haystack, query)
	}
}

// Exact: equality terhadap satu field. "" atau "all" = match everything.
func Exact[T any](value string, field func(T) string) Predicate[T] {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, MatchAll) {
		return nil
	}
	return func(rec T) bool {
		return field(rec) == value
	}
}

// DateEquals: kecocokan tanggal ISO (YYYY-MM-DD) persis.
func DateEquals[T any](date string, field func(T) string) Predicate[T] {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil
	}
	return func(rec T) bool {
		return field(rec) == date
	}
}

// DateWithinRange: tanggal ISO berada dalam rentang [start, end] record.
// Perbandingan leksikografis valid untuk format YYYY-MM-DD.
func DateWithinRange[T any](date string, start, end func(T) string) Predicate[T] {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil
	}
	return func(rec T) bool {
		return start(rec) <= date && date <= end(rec)
	}
}
