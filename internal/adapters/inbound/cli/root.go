package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filesystem"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/gitinfo"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/tui"
	"github.com/drewnoakes/validate-slnf/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrValidationFailed is returned when at least one filter file has issues.
// The failure summary has already been printed when it is returned.
var ErrValidationFailed = errors.New("validation failed")

// env holds the collaborators the commands run against.
type env struct {
	fs       afero.Fs
	workDir  string
	resolver domain.MembershipResolver
	repo     domain.RepoInfo
}

// Option customizes the environment commands run in.
type Option func(*env)

// WithFs runs commands against fs with workDir as the current directory.
func WithFs(fs afero.Fs, workDir string) Option {
	return func(e *env) {
		e.fs = fs
		e.workDir = workDir
	}
}

// WithResolver replaces the solution membership resolver.
func WithResolver(r domain.MembershipResolver) Option {
	return func(e *env) { e.resolver = r }
}

// WithRepoInfo replaces the git lookup used for the JSON report.
func WithRepoInfo(r domain.RepoInfo) Option {
	return func(e *env) { e.repo = r }
}

func newEnv(opts []Option) (*env, error) {
	e := &env{repo: gitinfo.New()}
	for _, opt := range opts {
		opt(e)
	}
	if e.fs == nil {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		e.fs = afero.NewOsFs()
		e.workDir = wd
	}
	return e, nil
}

func newRootCmd(e *env) *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate-slnf [options] [file1.slnf file2.slnf ...]",
		Short: "Validate Visual Studio solution filter files",
		Long: "validate-slnf: A tool to validate that Visual Studio Solution Filter (.slnf) files have not fallen out of date\n\n" +
			"If no files are specified, all .slnf files in the current directory will be validated.\n" +
			"A first argument naming a subcommand (mcp, version, help) runs it unless a file of that\n" +
			"name exists; use -- before file paths to force validation.\n\n" +
			"Exit codes:\n" +
			"  0: All checks passed (or no .slnf files found)\n" +
			"  1: One or more checks failed",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, e, flags, args)
		},
	}
	cmd.SetVersionTemplate("validate-slnf {{.Version}}\n")

	f := cmd.Flags()
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Print detailed information about the validation process")
	f.BoolVarP(&flags.skipSolutionCheck, "skip-solution-check", "s", false, "Skip checking if projects exist in the parent solution file (.sln or .slnx)")
	f.BoolVarP(&flags.skipDiskCheck, "skip-disk-check", "d", false, "Skip checking if projects exist on disk")
	f.BoolVar(&flags.jsonOutput, "json", false, "Print the run report as JSON")
	f.StringVar(&flags.configPath, "config", "", "Config file (default .validate-slnf.yaml in the current directory)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd(e))
	return cmd
}

// NewRootCmdForTest returns the root command for testing. Arguments are not
// normalized; use Run to exercise the full command line.
func NewRootCmdForTest(opts ...Option) *cobra.Command {
	e, err := newEnv(opts)
	if err != nil {
		panic(err)
	}
	return newRootCmd(e)
}

// Run executes the command line args, writing to stdout and stderr. Command
// errors other than ErrValidationFailed are printed to stderr.
func Run(args []string, stdout, stderr io.Writer, opts ...Option) error {
	e, err := newEnv(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	gw := filesystem.NewWithFs(e.fs, e.workDir)
	args, unknown := normalizeArgs(args, gw.FileExists)
	for _, tok := range unknown {
		fmt.Fprint(stderr, tui.RenderUnknownOption(tok))
	}

	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrValidationFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// newLogger returns the diagnostics logger writing to w at the named level.
func newLogger(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           logLevel(level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "validate-slnf",
	})
}

func logLevel(name string) log.Level {
	switch name {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
