package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	noFiles := func(string) bool { return false }

	tests := []struct {
		name        string
		args        []string
		wantOut     []string
		wantUnknown []string
	}{
		{"no args", []string{}, []string{}, nil},
		{"files only", []string{"a.slnf", "b.slnf"}, []string{"--", "a.slnf", "b.slnf"}, nil},
		{"case-insensitive long flags", []string{"--VERBOSE", "--Skip-Disk-Check"}, []string{"--verbose", "--skip-disk-check"}, nil},
		{"case-insensitive short flags", []string{"-V", "-S"}, []string{"-v", "-s"}, nil},
		{"combined short flags", []string{"-vsd"}, []string{"-vsd"}, nil},
		{"windows help", []string{"/?"}, []string{"--help"}, nil},
		{"unknown long option", []string{"--bogus", "a.slnf"}, []string{"--", "a.slnf"}, []string{"--bogus"}},
		{"unknown short option", []string{"-x", "-vx"}, []string{}, []string{"-x", "-vx"}},
		{"config with value", []string{"--Config", "ci.yaml"}, []string{"--config", "ci.yaml"}, nil},
		{"config with equals", []string{"--CONFIG=Ci.yaml"}, []string{"--config=Ci.yaml"}, nil},
		{"flags after files", []string{"a.slnf", "-v"}, []string{"-v", "--", "a.slnf"}, nil},
		{"double dash ends options", []string{"-v", "--", "--weird.slnf"}, []string{"-v", "--", "--weird.slnf"}, nil},
		{"lone dash is a path", []string{"-"}, []string{"--", "-"}, nil},
		{"subcommand untouched", []string{"mcp", "serve", "--LOG-LEVEL", "debug"}, []string{"mcp", "serve", "--LOG-LEVEL", "debug"}, nil},
		{"subcommand name later is a path", []string{"a.slnf", "version"}, []string{"--", "a.slnf", "version"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, unknown := normalizeArgs(tt.args, noFiles)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantUnknown, unknown)
		})
	}
}

func TestNormalizeArgs_FileNamedLikeSubcommand(t *testing.T) {
	isFile := func(p string) bool { return p == "help" }

	out, unknown := normalizeArgs([]string{"help", "-v"}, isFile)
	assert.Equal(t, []string{"-v", "--", "help"}, out)
	assert.Empty(t, unknown)

	out, _ = normalizeArgs([]string{"version"}, isFile)
	assert.Equal(t, []string{"version"}, out, "no file named version, so the subcommand runs")
}
