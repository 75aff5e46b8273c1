package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/arnegrid/qrobdd/bdd"
	"github.com/arnegrid/qrobdd/order"
)

// Model is one satisfying assignment, named through ord. Variables off the
// chosen path (don't-care for this model) are absent, mirroring bdd.AnyModel.
type Model map[string]bool

// AnyModel returns one satisfying assignment of h, named through ord, and
// false if h is unsatisfiable.
func AnyModel(s *bdd.Store, ord *order.Ordering, h bdd.Handle) (Model, bool) {
	raw, ok := s.AnyModel(h)
	if !ok {
		return nil, false
	}
	m := make(Model, len(raw))
	for idx, val := range raw {
		m[ord.Name(idx)] = val
	}
	return m, true
}

// TrueNames returns the names assigned true in m, sorted for stable output.
func (m Model) TrueNames() []string {
	names := make([]string, 0, len(m))
	for name, val := range m {
		if val {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// WriteModel prints one "name = True|False" line per assigned variable, in
// ordering order; variables the model leaves unconstrained are omitted.
func WriteModel(w io.Writer, ord *order.Ordering, m Model) error {
	for _, name := range ord.Names() {
		val, ok := m[name]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, boolWord(val)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTrueVariables prints the names assigned true in m, one per line, in
// ordering order.
func WriteTrueVariables(w io.Writer, ord *order.Ordering, m Model) error {
	for _, name := range ord.Names() {
		if val, ok := m[name]; ok && val {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
	}
	return nil
}
