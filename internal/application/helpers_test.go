package application_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filesystem"
	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filterdoc"
	"github.com/drewnoakes/validate-slnf/internal/application"
	"github.com/drewnoakes/validate-slnf/internal/domain"
)

const (
	basePath     = "/test"
	filterPath   = "/test/test.slnf"
	solutionPath = "/test/test.sln"
)

const twoProjectFilter = `{
  "solution": {
    "path": "test.sln",
    "projects": [
      "Project1\\Project1.csproj",
      "Project2\\Project2.csproj"
    ]
  }
}`

// fakeResolver returns canned membership per solution path.
type fakeResolver struct {
	solutions map[string][]string
	err       error
	calls     int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{solutions: map[string][]string{}}
}

func (f *fakeResolver) AddSolution(path string, projects ...string) {
	f.solutions[path] = projects
}

func (f *fakeResolver) MembersOf(path string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	projects, ok := f.solutions[path]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "solution file", Path: path}
	}
	return projects, nil
}

type fixture struct {
	fs       afero.Fs
	gateway  *filesystem.Gateway
	resolver *fakeResolver
	logs     *bytes.Buffer
}

func newFixture() *fixture {
	fs := afero.NewMemMapFs()
	return &fixture{
		fs:       fs,
		gateway:  filesystem.NewWithFs(fs, basePath),
		resolver: newFakeResolver(),
		logs:     new(bytes.Buffer),
	}
}

func (f *fixture) AddFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(content), 0644))
}

func (f *fixture) Service(checks domain.CheckOptions) *application.ValidateService {
	logger := log.NewWithOptions(f.logs, log.Options{Level: log.DebugLevel})
	return application.NewValidateService(f.gateway, filterdoc.New(), f.resolver, checks, logger)
}
