package output

import (
	"fmt"
	"io"

	"github.com/nestcfg/nestcfg/pkg/nestcfg"
)

// SourceOutput re-renders a configuration tree in source syntax, normalized
// to canonical spacing.
type SourceOutput struct {
	w       io.Writer
	options *ValueOutputOptions
}

func (o *SourceOutput) WriteConfig(pairs nestcfg.Pairs) error {
	_, err := fmt.Fprintln(o.w, pairs.String())
	return err
}
