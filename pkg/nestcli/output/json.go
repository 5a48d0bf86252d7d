package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/nestcfg/nestcfg/pkg/nestcfg"
)

var jsonPretty = jsoniter.Config{
	IndentionStep: 2,
	EscapeHTML:    false,
}.Froze()

// JSONOutput renders a configuration tree as a JSON document. Object keys
// keep their source order, and duplicate keys are written out as often as
// they appear rather than merged.
type JSONOutput struct {
	w       io.Writer
	options *ValueOutputOptions
}

func (o *JSONOutput) WriteConfig(pairs nestcfg.Pairs) error {
	cfg := jsoniter.ConfigFastest
	if o.options.Pretty {
		cfg = jsonPretty
	}
	s := cfg.BorrowStream(o.w)
	defer cfg.ReturnStream(s)

	writePairs(s, pairs)
	s.WriteRaw("\n")
	return s.Flush()
}

func writePairs(s *jsoniter.Stream, pairs nestcfg.Pairs) {
	s.WriteObjectStart()
	for i, kv := range pairs {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField(kv.Key)
		writeValue(s, kv.Value)
	}
	s.WriteObjectEnd()
}

func writeValue(s *jsoniter.Stream, v nestcfg.Value) {
	switch v := v.(type) {
	case nestcfg.StringValue:
		s.WriteString(string(v))
	case nestcfg.ListValue:
		s.WriteArrayStart()
		for i, item := range v {
			if i > 0 {
				s.WriteMore()
			}
			writeValue(s, item)
		}
		s.WriteArrayEnd()
	case nestcfg.ObjectValue:
		writePairs(s, nestcfg.Pairs(v))
	}
}
