package main

import (
	"testing"
)

func Test_contextLine(t *testing.T) {
	type args struct {
		input  string
		offset int
	}
	tests := []struct {
		name     string
		args     args
		wantLine string
		wantCol  int
	}{
		{
			"single line",
			args{"key=@", 4},
			"key=@", 4,
		},
		{
			"middle line",
			args{"a='b'\nc=@\nd='e'", 8},
			"c=@", 2,
		},
		{
			"offset at end of input",
			args{"key", 3},
			"key", 3,
		},
		{
			"offset past end of input",
			args{"key", 10},
			"key", 3,
		},
		{
			"empty input",
			args{"", 0},
			"", 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := contextLine(tt.args.input, tt.args.offset)
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("contextLine() = (%q, %d), want (%q, %d)", line, col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func Test_tailOffset(t *testing.T) {
	type args struct {
		input string
		rest  string
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			"no tail",
			args{"a='b'", ""},
			-1,
		},
		{
			"blank tail",
			args{"a='b'   ", "   "},
			-1,
		},
		{
			"garbage tail",
			args{"a='b';@", "@"},
			6,
		},
		{
			"garbage tail behind whitespace",
			args{"a='b'; @x", " @x"},
			7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tailOffset(tt.args.input, tt.args.rest); got != tt.want {
				t.Errorf("tailOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}
