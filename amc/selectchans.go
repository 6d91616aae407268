package amc

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/michaelchughes/mocap6dataset/internal/log"
)

// SelectChannels projects m down to the columns named by query, in query
// order rather than decode order. A query matches the first decoded
// channel whose name starts with it, so abbreviated names work. Queries
// with no match are logged and omitted, making the result narrower than
// the query list; with no match at all the matrix is nil.
func SelectChannels(m *mat.Dense, names, query []string) (*mat.Dense, []string) {
	cols := make([]int, 0, len(query))
	selected := make([]string, 0, len(query))
	for _, q := range query {
		found := -1
		for j, name := range names {
			if strings.HasPrefix(name, q) {
				found = j
				break
			}
		}
		if found < 0 {
			log.Warn("channel not found", "query", q)
			continue
		}
		cols = append(cols, found)
		selected = append(selected, q)
	}
	if len(cols) == 0 {
		return nil, nil
	}

	rows, _ := m.Dims()
	out := mat.NewDense(rows, len(cols), nil)
	for k, j := range cols {
		out.SetCol(k, mat.Col(nil, j, m))
	}
	return out, selected
}
