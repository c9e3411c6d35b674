package database

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Page is one page of a result set. Number is 1-based.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate slices items into pages of size and returns page number. A size
// below 1 is treated as 1. Numbers below 1 return the first page and numbers
// past the end return the last page, so a page is always returned. An empty
// result set has a single empty page.
func Paginate[T any](items []T, size, number int) Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		Size:       size,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}

// ParsePageNumber reads a page query parameter, anything that is not an
// integer selects the first page. Integers too large to represent select the
// last page once passed to Paginate.
func ParsePageNumber(raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err == nil {
		return n
	}
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	return 1
}

func (p Page[T]) HasNext() bool     { return p.Number < p.TotalPages }
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }
func (p Page[T]) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}
func (p Page[T]) NextNumber() int     { return p.Number + 1 }
func (p Page[T]) PreviousNumber() int { return p.Number - 1 }

// Numbers lists every page number, for pager links
func (p Page[T]) Numbers() []int {
	numbers := make([]int, p.TotalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}
