package nestcfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorMessage(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{
			err:  newIdentifierErr(0),
			want: `parse error at offset 0: identifier does not start with an alphabetic character`,
		},
		{
			err:  newPrematureEndErr(13),
			want: `parse error at offset 13: premature end of input`,
		},
		{
			err:  newLiteralErr(3, "="),
			want: `parse error at offset 3: expected "="`,
		},
		{
			err:  newEscapeErr(3, 'x'),
			want: `parse error at offset 3: unknown escaped symbol 'x'`,
		},
		{
			err:  newNoValueErr(4),
			want: `parse error at offset 4: no value found`,
		},
	} {
		t.Run(tc.want, func(t *testing.T) {
			require.EqualError(t, tc.err, tc.want)
		})
	}
}

func TestIsParseError(t *testing.T) {
	tests := []struct {
		name  string
		errFn func() error
		want  bool
	}{
		{
			"bad input",
			func() error {
				_, _, err := Parse(`key=@`)
				return err
			},
			true,
		},
		{
			"other error",
			func() error {
				return errors.New("")
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.errFn(), ErrParse); got != tt.want {
				t.Errorf("errors.Is(err, ErrParse) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrorSentinels(t *testing.T) {
	_, _, err := Parse(`key=@`)
	require.True(t, errors.Is(err, ErrNoValue))
	require.False(t, errors.Is(err, ErrLiteralNotFound))

	_, _, err = Parse(`key`)
	require.True(t, errors.Is(err, ErrLiteralNotFound))
	require.False(t, errors.Is(err, ErrNoValue))

	_, _, err = singleQuotedString(cursor{rest: `'a\x'`})
	require.True(t, errors.Is(err, ErrUnknownEscape))

	_, _, err = singleQuotedString(cursor{rest: `'open`})
	require.True(t, errors.Is(err, ErrPrematureEnd))

	_, _, err = identifier(cursor{rest: `9`})
	require.True(t, errors.Is(err, ErrIdentifierFirstChar))
}

func TestParseErrorFields(t *testing.T) {
	_, _, err := Parse(`key`)

	var perr ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 3, perr.Offset)
	require.Equal(t, "=", perr.Expected)

	_, _, err = singleQuotedString(cursor{rest: `'a\x'`, off: 10})
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 13, perr.Offset)
	require.Equal(t, 'x', perr.Symbol)
}
