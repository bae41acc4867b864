package substance

import (
	"golang.org/x/text/unicode/norm"

	"minichem/internal/ptable"
)

// ParseParts tokenizes a bare formula like "SO4", "Cr2O7" or
// "Fe(OH)2" into an ordered element count list. Parenthesized groups
// may nest; repeated elements accumulate into the first occurrence.
// The input is NFKC-normalized first, so full-width digits and
// look-alike letters fold to their ASCII forms.
func ParseParts(s string) ([]ElementCount, error) {
	s = norm.NFKC.String(s)
	parts, rest, err := parseGroup(s, false)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, modelErrorf(ErrCodeConversion, "unexpected %q in formula %q", rest, s)
	}
	if len(parts) == 0 {
		return nil, modelErrorf(ErrCodeConversion, "empty formula")
	}
	return parts, nil
}

// parseGroup consumes tokens until the end of input or, when inner is
// true, a closing parenthesis. It returns the unconsumed remainder.
func parseGroup(s string, inner bool) ([]ElementCount, string, error) {
	var parts []ElementCount

	add := func(el ptable.Element, n int) {
		for i := range parts {
			if parts[i].Element.Equal(el) {
				parts[i].Count += n
				return
			}
		}
		parts = append(parts, ElementCount{Element: el, Count: n})
	}

	for s != "" {
		switch c := s[0]; {
		case c == ')':
			if !inner {
				return nil, "", modelErrorf(ErrCodeConversion, "unbalanced parenthesis")
			}
			return parts, s, nil

		case c == '(':
			group, rest, err := parseGroup(s[1:], true)
			if err != nil {
				return nil, "", err
			}
			if rest == "" || rest[0] != ')' {
				return nil, "", modelErrorf(ErrCodeConversion, "unbalanced parenthesis")
			}
			rest = rest[1:]
			factor := 1
			factor, rest = parseCount(rest)
			for _, p := range group {
				add(p.Element, p.Count*factor)
			}
			s = rest

		case c >= 'A' && c <= 'Z':
			symbol := s[:1]
			s = s[1:]
			for s != "" && s[0] >= 'a' && s[0] <= 'z' {
				symbol += s[:1]
				s = s[1:]
			}
			el, err := ptable.BySymbol(symbol)
			if err != nil {
				return nil, "", modelErrorf(ErrCodeConversion, "unknown element symbol %q", symbol)
			}
			var count int
			count, s = parseCount(s)
			add(el, count)

		default:
			return nil, "", modelErrorf(ErrCodeConversion, "unexpected character %q in formula", string(c))
		}
	}

	if inner {
		return nil, "", modelErrorf(ErrCodeConversion, "unbalanced parenthesis")
	}
	return parts, "", nil
}

// parseCount reads an optional leading integer, defaulting to 1.
func parseCount(s string) (int, string) {
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 {
		return 1, s
	}
	return n, s[i:]
}
