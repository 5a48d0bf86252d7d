package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("nestcli", "A command-line tool for validating and converting nestcfg configuration files.")
	app.Version(version.Print("nestcli"))
	app.HelpFlag.Short('h')

	addCheckCommand(app)
	addConvertCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// readInput reads the named file, or stdin when name is empty or "-".
func readInput(name string) (string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrap(err, "failed to read file")
	}
	return string(data), nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

// printIssue reports a problem at a byte offset of the input, pointing a
// caret at the offending position within its line.
func printIssue(name, input string, offset int, msg string) {
	fmt.Printf("%s: %s\n", name, color.RedString(msg))
	line, col := contextLine(input, offset)
	if line == "" {
		return
	}
	fmt.Printf("\t%s\n", line)
	fmt.Printf("\t%s^\n", strings.Repeat(" ", utf8.RuneCountInString(line[:col])))
}

// contextLine returns the line of input containing the byte offset and the
// offset's byte column within that line.
func contextLine(input string, offset int) (string, int) {
	if offset > len(input) {
		offset = len(input)
	}
	start := strings.LastIndexByte(input[:offset], '\n') + 1
	end := strings.IndexByte(input[offset:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += offset
	}
	return input[start:end], offset - start
}

// tailOffset returns the offset of the first non-whitespace byte of the
// unconsumed tail, or -1 when the tail is blank.
func tailOffset(input, rest string) int {
	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if trimmed == "" {
		return -1
	}
	return len(input) - len(trimmed)
}
