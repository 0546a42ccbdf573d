package jsontree

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath compiles a dotted/indexed path such as
//
//	store.book[0].title
//	$.store['first name'][2]
//
// A leading '$' is optional. Names after '.' use letters, digits, '_' and
// '-'; any other key must be bracket-quoted with ' or ", where '\' escapes
// the next character. Indices must be non-negative integers. The empty
// string and "$" both denote the root.
func ParsePath(expr string) (Path, error) {
	i := 0
	if strings.HasPrefix(expr, "$") {
		i = 1
	}

	var path Path

	// A path without '$' may begin with a bare name.
	if i == 0 && expr != "" && expr[0] != '[' && expr[0] != '.' {
		name, next, err := parseName(expr, 0)
		if err != nil {
			return nil, err
		}
		path = append(path, Key(name))
		i = next
	}

	for i < len(expr) {
		elem, next, err := parseSegment(expr, i)
		if err != nil {
			return nil, err
		}
		path = append(path, elem)
		i = next
	}

	return path, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(expr string) Path {
	path, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return path
}

func parseSegment(expr string, i int) (Element, int, error) {
	switch expr[i] {
	case '.':
		return parseDotSegment(expr, i)
	case '[':
		return parseBracketSegment(expr, i)
	}

	return Element{}, i, fmt.Errorf("%w: unexpected token '%c' at position %d, expected '.' or '['", ErrSyntax, expr[i], i)
}

func parseDotSegment(expr string, i int) (Element, int, error) {
	i++ // consume '.'
	if i >= len(expr) {
		return Element{}, i, fmt.Errorf("%w: path cannot end with '.'", ErrSyntax)
	}

	name, next, err := parseName(expr, i)
	if err != nil {
		return Element{}, i, err
	}
	return Key(name), next, nil
}

func parseName(expr string, i int) (string, int, error) {
	start := i
	for i < len(expr) && idRune(expr[i]) {
		i++
	}
	if start == i {
		return "", i, fmt.Errorf("%w: empty name at position %d", ErrSyntax, start)
	}
	return expr[start:i], i, nil
}

func parseBracketSegment(expr string, i int) (Element, int, error) {
	i++ // consume '['
	if i >= len(expr) {
		return Element{}, i, fmt.Errorf("%w: unterminated bracket selector, missing ']'", ErrSyntax)
	}

	if expr[i] == '\'' || expr[i] == '"' {
		return parseQuotedName(expr, i)
	}

	end := strings.IndexByte(expr[i:], ']')
	if end == -1 {
		return Element{}, i, fmt.Errorf("%w: unterminated bracket selector, missing ']' for content starting at '%s'", ErrSyntax, expr[i:])
	}

	content := strings.TrimSpace(expr[i : i+end])
	next := i + end + 1

	if content == "" {
		return Element{}, next, fmt.Errorf("%w: empty bracket selector '[]'", ErrSyntax)
	}

	idx, err := strconv.Atoi(content)
	if err != nil {
		return Element{}, next, fmt.Errorf("%w: invalid index '%s' in bracket selector", ErrSyntax, content)
	}
	if idx < 0 {
		return Element{}, next, fmt.Errorf("%w: negative index %d", ErrSyntax, idx)
	}

	return Index(idx), next, nil
}

func parseQuotedName(expr string, i int) (Element, int, error) {
	quote := expr[i]
	i++ // consume opening quote

	var b strings.Builder
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == '\\':
			if i+1 >= len(expr) {
				return Element{}, i, fmt.Errorf("%w: dangling escape at end of path", ErrSyntax)
			}
			b.WriteByte(expr[i+1])
			i += 2
		case c == quote:
			i++
			if i >= len(expr) || expr[i] != ']' {
				return Element{}, i, fmt.Errorf("%w: expected ']' after quoted name at position %d", ErrSyntax, i)
			}
			return Key(b.String()), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}

	return Element{}, i, fmt.Errorf("%w: unterminated quoted name", ErrSyntax)
}
