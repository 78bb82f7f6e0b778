package anosim

import (
	"cmp"
	"fmt"
	"slices"
)

// Table is the minimal surface of an external tabular collaborator: a named
// column resolved to an identifier → label mapping. Rows for identifiers
// outside the distance matrix are ignored.
type Table[L cmp.Ordered] interface {
	Column(name string) (map[string]L, error)
}

// groupingKind tags the input variant carried by a Grouping.
type groupingKind int

const (
	byPosition groupingKind = iota
	byID
	byColumn
)

// Grouping is a tagged grouping input. Whatever the variant, it is
// normalized to one internal (position → group index) assignment against a
// distance matrix's identifier order before any statistic logic runs, so
// downstream code never branches on input shape.
type Grouping[L cmp.Ordered] struct {
	kind   groupingKind
	labels []L
	mapped map[string]L
	table  Table[L]
	column string
}

// ByPosition wraps a label sequence aligned 1:1 with the distance matrix's
// identifier order.
func ByPosition[L cmp.Ordered](labels []L) Grouping[L] {
	return Grouping[L]{kind: byPosition, labels: labels}
}

// ByID wraps an identifier → label mapping. Alignment is by identifier,
// not position; entries for unknown identifiers are ignored.
func ByID[L cmp.Ordered](m map[string]L) Grouping[L] {
	return Grouping[L]{kind: byID, mapped: m}
}

// ByColumn wraps an external table plus the column holding the labels.
// The column is fetched once per resolution.
func ByColumn[L cmp.Ordered](t Table[L], column string) Grouping[L] {
	return Grouping[L]{kind: byColumn, table: t, column: column}
}

// resolve aligns the grouping to ids. It returns the group index per
// position and the ascending distinct labels; member values index into the
// returned label slice.
func (g Grouping[L]) resolve(ids []string) (member []int, groups []L, err error) {
	labels := make([]L, len(ids))
	switch g.kind {
	case byPosition:
		if len(g.labels) != len(ids) {
			return nil, nil, fmt.Errorf("%d labels for %d samples: %w", len(g.labels), len(ids), ErrLengthMismatch)
		}
		copy(labels, g.labels)

	case byID:
		for i, id := range ids {
			l, ok := g.mapped[id]
			if !ok {
				return nil, nil, fmt.Errorf("%q: %w", id, ErrUnknownSample)
			}
			labels[i] = l
		}

	case byColumn:
		if g.table == nil {
			return nil, nil, ErrNilTable
		}
		column, err := g.table.Column(g.column)
		if err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", g.column, err)
		}
		for i, id := range ids {
			l, ok := column[id]
			if !ok {
				return nil, nil, fmt.Errorf("%q in column %q: %w", id, g.column, ErrUnknownSample)
			}
			labels[i] = l
		}
	}

	groups = slices.Clone(labels)
	slices.Sort(groups)
	groups = slices.Compact(groups)

	member = make([]int, len(ids))
	for i, l := range labels {
		member[i], _ = slices.BinarySearch(groups, l)
	}

	return member, groups, nil
}
