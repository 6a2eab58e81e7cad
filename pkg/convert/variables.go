package convert

import (
	"sort"

	"github.com/ArekkusuDev/polish-notation/pkg/parser"
)

// Variables returns the unique identifier names of an infix expression
// in lexicographic order. It is a pure function of the input string:
// duplicated identifiers collapse to one entry and input order does not
// matter. Numbers-only expressions yield an empty slice.
func Variables(expression string) ([]string, error) {
	tokens, err := parser.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, t := range tokens {
		if t.Type == parser.TokenIdentifier {
			set[t.Value] = struct{}{}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
