package nestcfg

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses input as a sequence of key=value pairs and returns the pairs
// together with whatever trailing input was not consumed. Trailing content
// (often nothing, or whitespace) is returned rather than rejected; deciding
// whether it is an error is the caller's concern.
//
// On failure the returned error is a ParseError carrying the byte offset at
// which parsing stopped.
func Parse(input string) (Pairs, string, error) {
	cur, pairs, err := parsePairs(cursor{rest: input})
	if err != nil {
		return nil, "", err
	}
	return pairs, cur.rest, nil
}

// cursor is a view over the input still to be parsed: the remaining text
// plus the byte offset of its start within the original input. Rules never
// mutate a cursor; a rule that consumes input returns an advanced copy, and
// a rule that fails returns its argument unchanged. Error offsets therefore
// always refer to positions in the original input.
type cursor struct {
	rest string
	off  int
}

func (c cursor) advance(n int) cursor {
	return cursor{rest: c.rest[n:], off: c.off + n}
}

// skipSpace advances past any run of Unicode whitespace. It never fails;
// with no leading whitespace the cursor comes back unchanged.
func skipSpace(c cursor) cursor {
	for i, r := range c.rest {
		if !unicode.IsSpace(r) {
			return c.advance(i)
		}
	}
	return c.advance(len(c.rest))
}

// literal consumes the exact text want at the cursor position. On failure
// the reported offset is the cursor position itself, so callers that retry
// an alternative at the same spot see a stable position.
func literal(c cursor, want string) (cursor, error) {
	if !strings.HasPrefix(c.rest, want) {
		return c, newLiteralErr(c.off, want)
	}
	return c.advance(len(want)), nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '_'
}

// identifier consumes an alphabetic code point followed by any run of
// alphanumeric, '-' or '_' code points.
func identifier(c cursor) (cursor, string, error) {
	if len(c.rest) == 0 {
		return c, "", newPrematureEndErr(c.off)
	}
	for i, r := range c.rest {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return c, "", newIdentifierErr(c.off)
			}
			continue
		}
		if !isIdentRune(r) {
			return c.advance(i), c.rest[:i], nil
		}
	}
	return c.advance(len(c.rest)), c.rest, nil
}

// escapedChar decodes the code point following a backslash inside a quoted
// string. Only a quote or another backslash may be escaped; anything else
// is reported at the offending code point's offset.
func escapedChar(c cursor) (cursor, rune, error) {
	if len(c.rest) == 0 {
		return c, 0, newPrematureEndErr(c.off)
	}
	r, size := utf8.DecodeRuneInString(c.rest)
	if r != '\'' && r != '\\' {
		return c, 0, newEscapeErr(c.off, r)
	}
	return c.advance(size), r, nil
}

// singleQuotedString consumes a single-quoted string and returns its
// decoded body. Input ending before the closing quote is reported at the
// end-of-input offset, tracking how far the scan got rather than where the
// string began.
func singleQuotedString(c cursor) (cursor, string, error) {
	cur, err := literal(c, "'")
	if err != nil {
		return c, "", err
	}
	var body strings.Builder
	for {
		if len(cur.rest) == 0 {
			return c, "", newPrematureEndErr(cur.off)
		}
		r, size := utf8.DecodeRuneInString(cur.rest)
		cur = cur.advance(size)
		switch r {
		case '\'':
			return cur, body.String(), nil
		case '\\':
			next, esc, err := escapedChar(cur)
			if err != nil {
				return c, "", err
			}
			cur = next
			body.WriteRune(esc)
		default:
			body.WriteRune(r)
		}
	}
}

// parseValue parses one of the three value forms. The forms are mutually
// exclusive on their first code point (quote, bracket, paren), so a single
// byte selects the rule to run. When the selected rule fails the other two
// could only have failed as well, and the result collapses to ErrNoValue at
// the starting offset, the same outcome as trying all three in order from
// the same cursor.
func parseValue(c cursor) (cursor, Value, error) {
	if len(c.rest) > 0 {
		switch c.rest[0] {
		case '\'':
			if cur, text, err := singleQuotedString(c); err == nil {
				return cur, StringValue(text), nil
			}
		case '[':
			if cur, items, err := parseList(c); err == nil {
				return cur, items, nil
			}
		case '(':
			if cur, obj, err := parseObject(c); err == nil {
				return cur, obj, nil
			}
		}
	}
	return c, nil, newNoValueErr(c.off)
}

// parseList consumes '[' values ']' with values separated by ';'. A failed
// first-value probe consumes nothing, which is what makes the empty list
// '[]' distinguishable from a malformed one: after the probe the closing
// bracket must follow directly.
func parseList(c cursor) (cursor, ListValue, error) {
	cur, err := literal(c, "[")
	if err != nil {
		return c, nil, err
	}
	cur = skipSpace(cur)

	items := ListValue{}
	next, v, err := parseValue(cur)
	if err != nil {
		end, err := literal(cur, "]")
		if err != nil {
			return c, nil, err
		}
		return end, items, nil
	}
	items = append(items, v)
	cur = next

	for {
		afterSep, err := literal(skipSpace(cur), ";")
		if err != nil {
			// No separator: the sequence ends at the cursor prior to the
			// whitespace skip; the closing bracket owns that whitespace.
			break
		}
		next, v, err := parseValue(skipSpace(afterSep))
		if err != nil {
			// Trailing separator with no value after it: the list ends
			// right after the ';'.
			cur = afterSep
			break
		}
		items = append(items, v)
		cur = next
	}

	end, err := literal(skipSpace(cur), "]")
	if err != nil {
		return c, nil, err
	}
	return end, items, nil
}

// parseObject consumes '(' pairs ')'. parsePairs fails only on a malformed
// first pair, which includes a body that opens directly with the closing
// paren; that failure consumes nothing, so the empty object falls out of
// requiring ')' at the same spot.
func parseObject(c cursor) (cursor, ObjectValue, error) {
	cur, err := literal(c, "(")
	if err != nil {
		return c, nil, err
	}
	cur = skipSpace(cur)

	next, pairs, err := parsePairs(cur)
	if err != nil {
		end, err := literal(cur, ")")
		if err != nil {
			return c, nil, err
		}
		return end, ObjectValue{}, nil
	}
	end, err := literal(skipSpace(next), ")")
	if err != nil {
		return c, nil, err
	}
	return end, ObjectValue(pairs), nil
}

// parsePair consumes identifier '=' value. There is no defaulting: a key
// without a value is an error, reported by whichever sub-rule saw it.
func parsePair(c cursor) (cursor, Pair, error) {
	cur, key, err := identifier(c)
	if err != nil {
		return c, Pair{}, err
	}
	cur, err = literal(skipSpace(cur), "=")
	if err != nil {
		return c, Pair{}, err
	}
	cur, v, err := parseValue(skipSpace(cur))
	if err != nil {
		return c, Pair{}, err
	}
	return cur, Pair{Key: key, Value: v}, nil
}

// parsePairs consumes a possibly empty ';'-separated sequence of pairs.
// The rule fails only when non-empty input does not begin with a valid
// pair. Both terminations are deliberate leniencies: a missing separator
// returns the cursor from before the preceding whitespace skip (trailing
// whitespace stays with whoever wraps the sequence), and a separator
// followed by anything but a pair returns the cursor right after the ';',
// leaving the trailing content unconsumed instead of failing.
func parsePairs(c cursor) (cursor, Pairs, error) {
	cur := skipSpace(c)
	pairs := Pairs{}
	if len(cur.rest) == 0 {
		return cur, pairs, nil
	}

	cur, kv, err := parsePair(cur)
	if err != nil {
		return c, nil, err
	}
	pairs = append(pairs, kv)

	for {
		afterSep, err := literal(skipSpace(cur), ";")
		if err != nil {
			return cur, pairs, nil
		}
		next, kv, err := parsePair(skipSpace(afterSep))
		if err != nil {
			return afterSep, pairs, nil
		}
		pairs = append(pairs, kv)
		cur = next
	}
}
