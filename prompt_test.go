package gmnx_test

import (
	"strings"
	"testing"

	"github.com/mr-joshcrane/gmnx"
)

func TestJoinQuery(t *testing.T) {
	t.Parallel()
	cases := []struct {
		description string
		args        []string
		want        string
	}{
		{
			description: "Words are joined with single spaces in order",
			args:        []string{"how", "to", "list", "files"},
			want:        "how to list files",
		},
		{
			description: "A single quoted argument is passed through",
			args:        []string{"how to list all running docker containers"},
			want:        "how to list all running docker containers",
		},
		{
			description: "Whitespace inside arguments is not trimmed",
			args:        []string{" a ", "b  "},
			want:        " a  b  ",
		},
	}
	for _, tc := range cases {
		if got := gmnx.JoinQuery(tc.args); got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.description, tc.want, got)
		}
	}
}

func TestSystemInstruction(t *testing.T) {
	t.Parallel()
	for _, want := range []string{"command-line assistant", "Zsh", "Ubuntu Linux", "short unless specified"} {
		if !strings.Contains(gmnx.SystemInstruction, want) {
			t.Errorf("system instruction missing %q", want)
		}
	}
}
