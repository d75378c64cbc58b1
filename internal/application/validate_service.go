package application

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

// ValidateService checks solution filter files against their parent solution
// and the project files on disk.
type ValidateService struct {
	fs       domain.FileSystem
	parser   domain.FilterParser
	resolver domain.MembershipResolver
	checks   domain.CheckOptions
	logger   *log.Logger
}

// NewValidateService creates a new ValidateService with all required dependencies.
// A nil logger discards diagnostics.
func NewValidateService(
	fs domain.FileSystem,
	parser domain.FilterParser,
	resolver domain.MembershipResolver,
	checks domain.CheckOptions,
	logger *log.Logger,
) *ValidateService {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ValidateService{
		fs: fs, parser: parser, resolver: resolver,
		checks: checks, logger: logger,
	}
}

// Checks returns the cross-checks this service runs.
func (s *ValidateService) Checks() domain.CheckOptions { return s.checks }

// FindFilterFiles lists the files in the current directory matching pattern.
// An empty pattern matches every .slnf file. No matches is not an error.
func (s *ValidateService) FindFilterFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*" + domain.FilterExtension
	}
	files, err := s.fs.ListFiles(s.fs.CurrentDir(), pattern)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("discovered filter files", "dir", s.fs.CurrentDir(), "pattern", pattern, "count", len(files))
	return files, nil
}

// Validate checks one filter file. A missing or malformed filter file is
// returned as an error; drift is reported in the result.
func (s *ValidateService) Validate(filterPath string) (*domain.ValidationResult, error) {
	if !s.fs.FileExists(filterPath) {
		return nil, &domain.NotFoundError{Kind: "SLNF file", Path: filterPath}
	}

	text, err := s.fs.ReadText(filterPath)
	if err != nil {
		return nil, err
	}

	doc, err := s.parser.Parse([]byte(text))
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = filterPath
			return nil, pe
		}
		return nil, &domain.ParseError{Path: filterPath, Err: err}
	}

	filterDir := s.fs.Dir(filterPath)
	solutionPath := s.fs.Abs(s.fs.Join(filterDir, domain.NativePath(doc.Solution.Path)))
	result := domain.NewValidationResult(filterPath, solutionPath, doc)

	// Nothing else can be checked without the parent solution.
	if !s.fs.FileExists(solutionPath) {
		result.SolutionExists = false
		return result, nil
	}

	if !s.checks.SkipSolutionCheck {
		if err := s.checkSolutionMembership(result); err != nil {
			s.logger.Error("Error parsing solution file", "solution", solutionPath, "err", err)
			result.SolutionExists = false
			return result, nil
		}
	}

	if !s.checks.SkipDiskCheck {
		s.checkDisk(result)
	}

	return result, nil
}

// ValidateAll validates each path in order. Per-file errors are recorded in
// the report and never stop the run.
func (s *ValidateService) ValidateAll(paths []string) *domain.RunReport {
	report := domain.NewRunReport(s.checks)
	for _, p := range paths {
		result, err := s.Validate(p)
		report.Add(p, result, err)
	}
	return report
}

func (s *ValidateService) checkSolutionMembership(result *domain.ValidationResult) error {
	members, err := s.resolver.MembersOf(result.SolutionPath)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(members))
	for _, m := range members {
		known[domain.ProjectKey(m)] = struct{}{}
	}

	for _, project := range result.Projects() {
		if _, ok := known[domain.ProjectKey(project)]; !ok {
			result.MissingFromSolution = append(result.MissingFromSolution, project)
		}
	}
	return nil
}

func (s *ValidateService) checkDisk(result *domain.ValidationResult) {
	solutionDir := s.fs.Dir(result.SolutionPath)
	for _, project := range result.Projects() {
		if !s.fs.FileExists(s.fs.Join(solutionDir, domain.NativePath(project))) {
			result.MissingFromDisk = append(result.MissingFromDisk, project)
		}
	}
}
