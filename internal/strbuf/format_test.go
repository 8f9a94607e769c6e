package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resona/internal/source"
)

func TestFormatTemplate(t *testing.T) {
	cases := []struct {
		msg    string
		out    string
		params []Param
	}{
		{"hello, world", "hello, world", nil},
		{"$1", "99", []Param{U64(99)}},
		{
			"Parameter is $2, parameter is $1",
			"Parameter is 100, parameter is 42",
			[]Param{U64(42), U64(100)},
		},
		{"fmt $1", "fmt $(missing)", nil},
		{"fmt $", "fmt $(badformat)", nil},
		{"inval $q", "inval $(badformat)", nil},
		{"p $1 q", "p $(badtype) q", []Param{{}}},
		{"p $1 q", "p $(badtype) q", []Param{SpanParam(source.NewSpan(1, 2))}},
		{"100$$", "100$", nil},
		{"$$$1$$", "$7$", []Param{U64(7)}},
		{"a $0 b", "a $(badformat) b", []Param{U64(1)}},
		{"$2 then $1", "$(missing) then 5", []Param{U64(5)}},
	}
	var b Builder
	for _, tc := range cases {
		b.Reset()
		b.FormatTemplate(tc.msg, tc.params)
		assert.Equal(t, tc.out, b.String(), "template %q", tc.msg)
	}
}

func TestFormatTemplateAppends(t *testing.T) {
	var b Builder
	b.PutString("prefix: ")
	b.FormatTemplate("value $1", []Param{U64(3)})
	assert.Equal(t, "prefix: value 3", b.String())
}

func TestParamSpan(t *testing.T) {
	s, ok := SpanParam(source.NewSpan(3, 8)).Span()
	assert.True(t, ok)
	assert.Equal(t, source.NewSpan(3, 8), s)

	_, ok = U64(1).Span()
	assert.False(t, ok)
}
