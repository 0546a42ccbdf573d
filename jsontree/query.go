package jsontree

import (
	"fmt"

	"github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"
)

// Match is one node selected by Query.
type Match struct {
	Path Path
	Node *Node
}

// Query evaluates an RFC 9535 JSONPath expression against n.
//
// Matches reference nodes inside n, so they can be modified in place, and
// their Path can be fed back to ReadPath or WritePath. Selection order
// follows the expression; members selected by a wildcard over an object come
// back in no particular order.
func (n *Node) Query(expr string) ([]Match, error) {
	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrSyntax, expr, err)
	}

	located := p.SelectLocated(n.Any())
	matches := make([]Match, 0, len(located))

	for _, ln := range located {
		path, err := fromNormalized(ln.Path)
		if err != nil {
			return nil, err
		}

		node, ok, err := n.ReadPath(path...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: selected path %s not present in tree", ErrMalformed, path)
		}

		matches = append(matches, Match{Path: path, Node: node})
	}

	return matches, nil
}

func fromNormalized(np spec.NormalizedPath) (Path, error) {
	path := make(Path, 0, len(np))
	for _, sel := range np {
		switch s := sel.(type) {
		case spec.Name:
			path = append(path, Key(string(s)))
		case spec.Index:
			path = append(path, Index(int(s)))
		default:
			return nil, fmt.Errorf("%w: unexpected selector %v in normalized path", ErrPathElement, sel)
		}
	}
	return path, nil
}
