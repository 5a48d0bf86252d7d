package output

import (
	"fmt"
	"io"

	"github.com/nestcfg/nestcfg/pkg/nestcfg"
)

// ValueOutput formats parsed configuration trees for display.
type ValueOutput interface {
	WriteConfig(pairs nestcfg.Pairs) error
}

// ValueOutputOptions defines options applicable to all output modes.
type ValueOutputOptions struct {
	Pretty bool
}

// NewValueOutput creates a ValueOutput writing to w in the given mode.
func NewValueOutput(w io.Writer, mode string, options *ValueOutputOptions) (ValueOutput, error) {
	switch mode {
	case "json":
		return &JSONOutput{w, options}, nil
	case "yaml":
		return &YAMLOutput{w, options}, nil
	case "source":
		return &SourceOutput{w, options}, nil
	default:
		return nil, fmt.Errorf("unknown output mode '%s', must be one of json, yaml, source", mode)
	}
}
