package report

import (
	"errors"
	"fmt"

	"portfolio-deck-api/domain"
)

// Default page bounds for every report section.
const (
	MinPerPage = 3
	MaxPerPage = 5
)

var (
	// ErrInvalidPagination marks precondition violations of Paginate.
	ErrInvalidPagination = errors.New("invalid pagination input")
	// ErrNoDynamicColumns marks a zero-column request to AllocateColumns.
	ErrNoDynamicColumns = errors.New("at least one dynamic column is required")
)

// Paginate partitions total records into page-sized groups. Every group lands
// in [min, max], except a single undersized group when total < min and the
// single group when total <= max. Extra records are biased toward earlier
// pages.
func Paginate(total, min, max int) ([]int, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: negative total %d", ErrInvalidPagination, total)
	}
	if min <= 0 || max < min {
		return nil, fmt.Errorf("%w: bounds min=%d max=%d", ErrInvalidPagination, min, max)
	}
	if total == 0 {
		return nil, nil
	}
	if total <= max {
		return []int{total}, nil
	}

	groups := (total + max - 1) / max
	base := total / groups
	remainder := total % groups

	sizes := make([]int, groups)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes, nil
}

// SplitGroups slices records into contiguous groups of the given sizes.
// Sizes must sum to len(records), as produced by Paginate.
func SplitGroups(records []domain.Record, sizes []int) [][]domain.Record {
	groups := make([][]domain.Record, 0, len(sizes))
	start := 0
	for _, n := range sizes {
		groups = append(groups, records[start:start+n])
		start += n
	}
	return groups
}

// AllocateColumns splits the available table width between a fixed leading
// block and n equal dynamic columns: fixed + n*dynamic == total up to
// floating point rounding. No minimum-width enforcement is performed.
func AllocateColumns(dynamic int, totalWidth, fixedWidth float64) (float64, float64, error) {
	if dynamic < 1 {
		return 0, 0, ErrNoDynamicColumns
	}
	return fixedWidth, (totalWidth - fixedWidth) / float64(dynamic), nil
}
