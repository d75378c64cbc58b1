package domain

// Run statuses.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// FileOutcome records what happened to one filter file during a run. Exactly
// one of Result and Err is set.
type FileOutcome struct {
	FilterPath string            `json:"filter_path"`
	HasIssues  bool              `json:"has_issues"`
	Result     *ValidationResult `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
	Err        error             `json:"-"`
}

// RunReport aggregates the outcomes of every filter file checked in one run.
type RunReport struct {
	Status     string        `json:"status"`
	Commit     string        `json:"commit,omitempty"`
	Discovered bool          `json:"discovered"`
	Checks     CheckOptions  `json:"checks"`
	Files      []FileOutcome `json:"files"`
}

// NewRunReport returns an empty, passing report.
func NewRunReport(checks CheckOptions) *RunReport {
	return &RunReport{Status: StatusPass, Checks: checks, Files: []FileOutcome{}}
}

// Add records the outcome for path. A non-nil err counts as an issue.
func (r *RunReport) Add(path string, result *ValidationResult, err error) FileOutcome {
	o := FileOutcome{FilterPath: path}
	if err != nil {
		o.Err = err
		o.Error = err.Error()
		o.HasIssues = true
	} else {
		o.Result = result
		o.HasIssues = result.HasIssues()
	}
	if o.HasIssues {
		r.Status = StatusFail
	}
	r.Files = append(r.Files, o)
	return o
}

// HasIssues reports whether any file failed validation or could not be validated.
func (r *RunReport) HasIssues() bool {
	for _, f := range r.Files {
		if f.HasIssues {
			return true
		}
	}
	return false
}

// Failures returns the validation results that have issues, in run order.
// Files that raised an error have no result and are not included.
func (r *RunReport) Failures() []*ValidationResult {
	var out []*ValidationResult
	for _, f := range r.Files {
		if f.Result != nil && f.HasIssues {
			out = append(out, f.Result)
		}
	}
	return out
}

// ExitCode maps the report to the process exit status.
func (r *RunReport) ExitCode() int {
	if r.HasIssues() {
		return 1
	}
	return 0
}
