package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/nestcfg/nestcfg/pkg/nestcfg"
	"github.com/nestcfg/nestcfg/pkg/nestcli/output"
)

// convertCommand parses a nestcfg file and re-emits it in another format.
type convertCommand struct {
	file   *string
	format *string
	output *string
	pretty *bool
}

func (cmd *convertCommand) run(c *kingpin.ParseContext) error {
	input, err := readInput(*cmd.file)
	if err != nil {
		exitWithErr(err)
	}
	name := displayName(*cmd.file)

	pairs, rest, err := nestcfg.Parse(input)
	if err != nil {
		var perr nestcfg.ParseError
		if errors.As(err, &perr) {
			printIssue(name, input, perr.Offset, err.Error())
		} else {
			printIssue(name, input, 0, err.Error())
		}
		os.Exit(1)
	}
	if off := tailOffset(input, rest); off >= 0 {
		printIssue(name, input, off, fmt.Sprintf("unparsable content at offset %d", off))
		os.Exit(1)
	}

	if *cmd.output == "" {
		return cmd.write(os.Stdout, pairs)
	}
	f, err := os.Create(*cmd.output)
	if err != nil {
		exitWithErr(errors.Wrap(err, "failed to create output file"))
	}
	if err := cmd.write(f, pairs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (cmd *convertCommand) write(w io.Writer, pairs nestcfg.Pairs) error {
	out, err := output.NewValueOutput(w, *cmd.format, &output.ValueOutputOptions{Pretty: *cmd.pretty})
	if err != nil {
		return err
	}
	return errors.Wrap(out.WriteConfig(pairs), "failed to write output")
}

func addConvertCommand(app *kingpin.Application) {
	cmd := &convertCommand{}
	convert := app.Command("convert", "Parse a nestcfg file and write it as JSON, YAML, or normalized source.").Action(cmd.run)
	cmd.file = convert.Arg("file", "The file to convert. Reads stdin when omitted.").ExistingFile()
	cmd.format = convert.Flag("format", "Output format. One of json, yaml, source.").Short('f').Default("json").Enum("json", "yaml", "source")
	cmd.output = convert.Flag("output", "Write to this file instead of stdout.").Short('o').String()
	cmd.pretty = convert.Flag("pretty", "Indent JSON output.").Bool()
}
