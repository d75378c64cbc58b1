package domain

// ValidationResult is the outcome of checking one filter file.
type ValidationResult struct {
	FilterPath          string          `json:"filter_path"`
	SolutionPath        string          `json:"solution_path"`
	Filter              *FilterDocument `json:"filter"`
	SolutionExists      bool            `json:"solution_exists"`
	MissingFromSolution []string        `json:"missing_from_solution"`
	MissingFromDisk     []string        `json:"missing_from_disk"`
}

// NewValidationResult starts a result that assumes the solution exists and
// nothing is missing.
func NewValidationResult(filterPath, solutionPath string, doc *FilterDocument) *ValidationResult {
	return &ValidationResult{
		FilterPath:          filterPath,
		SolutionPath:        solutionPath,
		Filter:              doc,
		SolutionExists:      true,
		MissingFromSolution: []string{},
		MissingFromDisk:     []string{},
	}
}

// HasIssues reports whether the filter has drifted from its solution or disk.
func (r *ValidationResult) HasIssues() bool {
	return !r.SolutionExists || len(r.MissingFromSolution) > 0 || len(r.MissingFromDisk) > 0
}

// Projects returns the projects declared by the filter.
func (r *ValidationResult) Projects() []string {
	if r.Filter == nil {
		return nil
	}
	return r.Filter.Solution.Projects
}

// CheckOptions selects which cross-checks run for each filter file.
type CheckOptions struct {
	SkipSolutionCheck bool `json:"skip_solution_check"`
	SkipDiskCheck     bool `json:"skip_disk_check"`
}
