package graphml

import (
	"strconv"
	"strings"

	"github.com/jublebi/dynacon/label"
	"github.com/jublebi/dynacon/lvmap"
)

// parseLabel parses the literal-conjunction form label.Label.String()
// renders ("p∧¬q∧¿r", "⊤" for the empty label) — the same grammar spec §6
// names for the `Label` node attribute and the label half of a
// `LabeledValues` set entry.
func parseLabel(s string) (label.Label, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "⊤" {
		return label.Empty(), nil
	}

	l := label.Empty()
	for _, tok := range strings.Split(s, "∧") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		state := label.Positive
		switch {
		case strings.HasPrefix(tok, "¬"):
			state = label.Negative
			tok = strings.TrimPrefix(tok, "¬")
		case strings.HasPrefix(tok, "¿"):
			state = label.Unknown
			tok = strings.TrimPrefix(tok, "¿")
		}
		if tok == "" {
			return label.Label{}, malformed("empty proposition in label %q", s)
		}
		l = l.With(tok, state)
	}
	return l, nil
}

// parseValueSet parses spec §6's `LabeledValues`/`LowerCaseLabeledValues`/
// `UpperCaseLabeledValues` set-literal grammar: "{ (int, label) ... }",
// entries packed with no separator between the closing and next opening
// parenthesis.
func parseValueSet(s string) ([]lvmap.Pair, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []lvmap.Pair
	for len(s) > 0 {
		if s[0] != '(' {
			return nil, malformed("expected '(' in value set %q", s)
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, malformed("unterminated entry in value set %q", s)
		}
		entry := s[1:end]
		comma := strings.IndexByte(entry, ',')
		if comma < 0 {
			return nil, malformed("expected 'int,label' in entry %q", entry)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(entry[:comma]), 10, 64)
		if err != nil {
			return nil, malformed("bad integer in entry %q", entry)
		}
		l, err := parseLabel(entry[comma+1:])
		if err != nil {
			return nil, err
		}
		out = append(out, lvmap.Pair{Label: l, Value: v})

		s = strings.TrimSpace(s[end+1:])
	}
	return out, nil
}

// renderValueSet renders entries back into spec §6's set-literal grammar.
func renderValueSet(entries []lvmap.Pair) string {
	var b strings.Builder
	b.WriteByte('{')
	for _, p := range entries {
		b.WriteByte('(')
		b.WriteString(strconv.FormatInt(p.Value, 10))
		b.WriteByte(',')
		b.WriteString(p.Label.String())
		b.WriteByte(')')
	}
	b.WriteByte('}')
	return b.String()
}

// parseLabeledValue parses the singular "LC(ctg):int" / "UC(ctg):int" form
// used for an unlabeled (plain-STNU) contingent bound.
func parseLabeledValue(s string) (ctg string, upper bool, value int64, err error) {
	s = strings.TrimSpace(s)
	var prefix string
	switch {
	case strings.HasPrefix(s, "LC("):
		prefix, upper = "LC(", false
	case strings.HasPrefix(s, "UC("):
		prefix, upper = "UC(", true
	default:
		return "", false, 0, malformed("expected LC(...)/UC(...) form, got %q", s)
	}
	rest := strings.TrimPrefix(s, prefix)
	closeIdx := strings.IndexByte(rest, ')')
	if closeIdx < 0 {
		return "", false, 0, malformed("unterminated %q", s)
	}
	ctg = rest[:closeIdx]
	rest = strings.TrimPrefix(rest[closeIdx+1:], ":")
	value, err = strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
	if err != nil {
		return "", false, 0, malformed("bad integer in %q", s)
	}
	return ctg, upper, value, nil
}

// renderLabeledValue renders the singular contingent-bound form.
func renderLabeledValue(ctg string, upper bool, value int64) string {
	if upper {
		return "UC(" + ctg + "):" + strconv.FormatInt(value, 10)
	}
	return "LC(" + ctg + "):" + strconv.FormatInt(value, 10)
}
