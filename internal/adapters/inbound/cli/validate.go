package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/config"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filesystem"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filterdoc"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/solution"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/tui"
	"github.com/drewnoakes/validate-slnf/internal/application"
	"github.com/drewnoakes/validate-slnf/internal/domain"
)

type validateFlags struct {
	verbose           bool
	skipSolutionCheck bool
	skipDiskCheck     bool
	jsonOutput        bool
	configPath        string
}

func runValidate(cmd *cobra.Command, e *env, flags validateFlags, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	gw := filesystem.NewWithFs(e.fs, e.workDir)

	cfg, err := loadConfig(e, gw, flags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, &cfg, flags)

	logger := newLogger(errOut, cfg.LogLevel)
	logger.Debug("configuration", "verbose", cfg.Verbose, "skip_solution_check", cfg.SkipSolutionCheck,
		"skip_disk_check", cfg.SkipDiskCheck, "pattern", cfg.Pattern)

	resolver := e.resolver
	if resolver == nil {
		resolver = application.NewSolutionResolver(gw, solution.New())
	}
	svc := application.NewValidateService(gw, filterdoc.New(), resolver, cfg.Checks(), logger)

	narrate := cfg.Verbose && !flags.jsonOutput
	report := domain.NewRunReport(svc.Checks())

	files := args
	if len(files) == 0 {
		found, err := svc.FindFilterFiles(cfg.Pattern)
		if err != nil {
			return fmt.Errorf("finding filter files: %w", err)
		}
		report.Discovered = true
		if len(found) == 0 {
			if flags.jsonOutput {
				return writeReport(cmd, e, report, logger)
			}
			fmt.Fprint(out, tui.RenderNoFilesWarning())
			return nil
		}
		if narrate {
			fmt.Fprint(out, tui.RenderDiscovery(len(found)))
		}
		files = found
	}

	for _, f := range files {
		if narrate {
			fmt.Fprint(out, tui.RenderProcessing(f))
		}
		result, err := svc.Validate(f)
		report.Add(f, result, err)
		if err != nil {
			fmt.Fprint(errOut, tui.RenderFileError(f, err))
			continue
		}
		if narrate {
			fmt.Fprint(out, tui.RenderFileReport(result, svc.Checks()))
		}
	}

	if flags.jsonOutput {
		if err := writeReport(cmd, e, report, logger); err != nil {
			return err
		}
	} else {
		fmt.Fprint(errOut, tui.RenderFailureSummary(report.Failures()))
		if narrate && !report.HasIssues() {
			fmt.Fprint(out, tui.RenderSuccess())
		}
	}

	if report.HasIssues() {
		return ErrValidationFailed
	}
	return nil
}

func loadConfig(e *env, gw *filesystem.Gateway, path string) (domain.Config, error) {
	var loader domain.ConfigLoader = config.New(e.fs)
	if path != "" {
		return loader.LoadFile(gw.Abs(path))
	}
	return loader.Load(e.workDir)
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *domain.Config, flags validateFlags) {
	f := cmd.Flags()
	if f.Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if f.Changed("skip-solution-check") {
		cfg.SkipSolutionCheck = flags.skipSolutionCheck
	}
	if f.Changed("skip-disk-check") {
		cfg.SkipDiskCheck = flags.skipDiskCheck
	}
}

func writeReport(cmd *cobra.Command, e *env, report *domain.RunReport, logger *log.Logger) error {
	if e.repo.IsGitRepo(e.workDir) {
		if hash, err := e.repo.CommitHash(e.workDir); err == nil {
			report.Commit = hash
		} else {
			logger.Debug("no git commit for report", "dir", e.workDir, "err", err)
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
