package nestcfg

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every way a parse can fail. A ParseError
// matches exactly one of the specific sentinels under errors.Is, and every
// ParseError also matches ErrParse.
var (
	ErrParse               = errors.New("malformed input")
	ErrIdentifierFirstChar = errors.New("identifier does not start with an alphabetic character")
	ErrPrematureEnd        = errors.New("premature end of input")
	ErrLiteralNotFound     = errors.New("expected literal not found")
	ErrUnknownEscape       = errors.New("unknown escaped symbol")
	ErrNoValue             = errors.New("no value found")
)

// ParseError is what is returned when input cannot be parsed. Offset is the
// byte offset from the start of the input at which the failure was detected.
type ParseError struct {
	Offset int

	// Expected is the literal that was required, when the error is
	// ErrLiteralNotFound.
	Expected string

	// Symbol is the offending code point, when the error is
	// ErrUnknownEscape.
	Symbol rune

	kind error
}

func (p ParseError) Error() string {
	switch p.kind {
	case ErrLiteralNotFound:
		return fmt.Sprintf("parse error at offset %d: expected %q", p.Offset, p.Expected)
	case ErrUnknownEscape:
		return fmt.Sprintf("parse error at offset %d: unknown escaped symbol %q", p.Offset, p.Symbol)
	default:
		return fmt.Sprintf("parse error at offset %d: %s", p.Offset, p.kind)
	}
}

// Is allows errors.Is(err, ErrParse) on any parse failure, in addition to
// matching the specific sentinel carried by the error.
func (p ParseError) Is(target error) bool {
	return target == ErrParse || target == p.kind
}

// Unwrap returns the sentinel classifying the failure.
func (p ParseError) Unwrap() error { return p.kind }

func newIdentifierErr(offset int) ParseError {
	return ParseError{Offset: offset, kind: ErrIdentifierFirstChar}
}

func newPrematureEndErr(offset int) ParseError {
	return ParseError{Offset: offset, kind: ErrPrematureEnd}
}

func newLiteralErr(offset int, expected string) ParseError {
	return ParseError{Offset: offset, Expected: expected, kind: ErrLiteralNotFound}
}

func newEscapeErr(offset int, symbol rune) ParseError {
	return ParseError{Offset: offset, Symbol: symbol, kind: ErrUnknownEscape}
}

func newNoValueErr(offset int) ParseError {
	return ParseError{Offset: offset, kind: ErrNoValue}
}
