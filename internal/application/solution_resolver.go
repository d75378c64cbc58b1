package application

import (
	"path/filepath"
	"strings"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

// SolutionResolver implements domain.MembershipResolver by reading a solution
// through the filesystem gateway and handing its grammar to a SolutionParser.
type SolutionResolver struct {
	fs     domain.FileSystem
	parser domain.SolutionParser
}

// NewSolutionResolver creates a SolutionResolver.
func NewSolutionResolver(fs domain.FileSystem, parser domain.SolutionParser) *SolutionResolver {
	return &SolutionResolver{fs: fs, parser: parser}
}

// MembersOf returns the buildable projects of the solution, relative to the
// solution's directory where possible, in the order the solution declares them.
// Solution folders are excluded.
func (r *SolutionResolver) MembersOf(solutionPath string) ([]string, error) {
	if !r.fs.FileExists(solutionPath) {
		return nil, &domain.NotFoundError{Kind: "solution file", Path: solutionPath}
	}

	text, err := r.fs.ReadText(solutionPath)
	if err != nil {
		return nil, err
	}

	entries, err := r.parser.ParseSolution(solutionPath, []byte(text))
	if err != nil {
		return nil, &domain.ParseError{Path: solutionPath, Err: err}
	}

	dir := r.fs.Dir(r.fs.Abs(solutionPath))
	members := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsFolder {
			continue
		}
		members = append(members, domain.RelativeToDir(r.absoluteMember(dir, e.Path), dir))
	}
	return members, nil
}

// absoluteMember resolves a declared member path against the solution
// directory. URLs (web site projects) are returned as declared.
func (r *SolutionResolver) absoluteMember(dir, path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	native := domain.NativePath(path)
	if filepath.IsAbs(native) {
		return native
	}
	return r.fs.Abs(r.fs.Join(dir, native))
}
