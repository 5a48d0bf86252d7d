package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/nestcfg/nestcfg/pkg/nestcfg"
)

// checkCommand validates nestcfg files and reports the position of the
// first problem in each.
type checkCommand struct {
	files *[]string
	stats *bool
}

func (cmd *checkCommand) run(c *kingpin.ParseContext) error {
	names := *cmd.files
	if len(names) == 0 {
		names = []string{"-"}
	}

	failed := false
	for _, name := range names {
		if err := cmd.checkFile(name); err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func (cmd *checkCommand) checkFile(name string) error {
	input, err := readInput(name)
	if err != nil {
		level.Error(logger).Log("msg", "failed to read input", "file", displayName(name), "err", err)
		return err
	}
	name = displayName(name)

	pairs, rest, err := nestcfg.Parse(input)
	if err != nil {
		var perr nestcfg.ParseError
		if errors.As(err, &perr) {
			printIssue(name, input, perr.Offset, err.Error())
		} else {
			printIssue(name, input, 0, err.Error())
		}
		return err
	}
	if off := tailOffset(input, rest); off >= 0 {
		printIssue(name, input, off, fmt.Sprintf("unparsable content at offset %d", off))
		return errors.New("unparsable trailing content")
	}

	if *cmd.stats {
		cmd.printStats(name, len(input), pairs)
		return nil
	}
	fmt.Printf("%s: %s\n", name, color.GreenString("ok"))
	return nil
}

func (cmd *checkCommand) printStats(name string, size int, pairs nestcfg.Pairs) {
	var strs, lists, objects int
	pairs.Walk(func(v nestcfg.Value) bool {
		switch v.(type) {
		case nestcfg.StringValue:
			strs++
		case nestcfg.ListValue:
			lists++
		case nestcfg.ObjectValue:
			objects++
		}
		return true
	})

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf("\tsize: %v, top-level pairs: %d\n", humanize.Bytes(uint64(size)), len(pairs))
	fmt.Printf("\tstrings: %d, lists: %d, objects: %d\n", strs, lists, objects)
}

func addCheckCommand(app *kingpin.Application) {
	cmd := &checkCommand{}
	check := app.Command("check", "Validate nestcfg files. Reads stdin when no file is given.").Action(cmd.run)
	cmd.files = check.Arg("file", "The files to validate.").ExistingFiles()
	cmd.stats = check.Flag("stats", "Print value counts instead of a plain verdict.").Bool()
}
