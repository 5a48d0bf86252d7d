package nestcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{v: StringValue(""), want: `''`},
		{v: StringValue("abc"), want: `'abc'`},
		{v: StringValue(`a'b\c`), want: `'a\'b\\c'`},
		{v: StringValue("aß c"), want: `'aß c'`},
		{v: ListValue{}, want: `[]`},
		{v: ListValue{StringValue("a"), StringValue("b")}, want: `['a';'b']`},
		{v: ObjectValue{}, want: `()`},
		{v: ObjectValue{{Key: "k", Value: StringValue("v")}}, want: `(k='v')`},
		{
			v: ListValue{
				ObjectValue{{Key: "k", Value: ListValue{StringValue("x")}}},
				StringValue("y"),
			},
			want: `[(k=['x']);'y']`,
		},
	} {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.String())
		})
	}
}

func TestPairsString(t *testing.T) {
	require.Equal(t, ``, Pairs{}.String())

	p := Pairs{
		{Key: "a", Value: StringValue("b")},
		{Key: "c", Value: ListValue{StringValue("d")}},
	}
	require.Equal(t, `a='b';c=['d']`, p.String())
}

// Rendering a parsed tree and parsing the result must yield the same tree.
func TestString_RoundTrip(t *testing.T) {
	for _, tc := range parseTestCases {
		if tc.err != nil {
			continue
		}
		t.Run(tc.in, func(t *testing.T) {
			pairs, _, err := Parse(tc.in)
			require.NoError(t, err)

			reparsed, rest, err := Parse(pairs.String())
			require.NoError(t, err)
			require.Empty(t, rest)
			require.Equal(t, pairs, reparsed)
		})
	}
}

func TestWalk(t *testing.T) {
	pairs, _, err := Parse(`a=['x';( b='y' )];c='z'`)
	require.NoError(t, err)

	var visited []string
	pairs.Walk(func(v Value) bool {
		visited = append(visited, v.String())
		return true
	})
	require.Equal(t, []string{
		`['x';(b='y')]`,
		`'x'`,
		`(b='y')`,
		`'y'`,
		`'z'`,
	}, visited)
}

func TestWalk_Prune(t *testing.T) {
	pairs, _, err := Parse(`a=['x';( b='y' )];c='z'`)
	require.NoError(t, err)

	var visited []string
	pairs.Walk(func(v Value) bool {
		visited = append(visited, v.String())
		_, isList := v.(ListValue)
		return !isList
	})
	require.Equal(t, []string{`['x';(b='y')]`, `'z'`}, visited)
}
