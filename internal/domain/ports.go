package domain

// FileSystem is the read-only gateway the validator uses to reach the disk.
type FileSystem interface {
	// FileExists reports whether path names an existing regular file.
	FileExists(path string) bool
	// ReadText returns the file contents, or a *NotFoundError when path is absent.
	ReadText(path string) (string, error)
	// ListFiles returns the files directly inside dir whose names match pattern.
	ListFiles(dir, pattern string) ([]string, error)
	Dir(path string) string
	// Join joins path elements. An absolute element discards the ones
	// before it.
	Join(parts ...string) string
	// Abs returns path unchanged when it is absolute, otherwise resolves it
	// against the gateway's base directory.
	Abs(path string) string
	CurrentDir() string
}

// FilterParser decodes the contents of a solution filter file.
type FilterParser interface {
	Parse(data []byte) (*FilterDocument, error)
}

// SolutionEntry is one project or folder declared by a solution file.
type SolutionEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	TypeGUID string `json:"type_guid,omitempty"`
	IsFolder bool   `json:"is_folder"`
}

// SolutionParser reads the grammar of a solution file (.sln or .slnx).
// The name is used only to select the grammar.
type SolutionParser interface {
	ParseSolution(name string, data []byte) ([]SolutionEntry, error)
}

// MembershipResolver lists the projects a solution contains, as paths
// relative to the solution's directory, in declared order.
type MembershipResolver interface {
	MembersOf(solutionPath string) ([]string, error)
}

// ConfigLoader loads the tool configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
	LoadFile(path string) (Config, error)
}

// RepoInfo provides version-control metadata about a directory.
type RepoInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}
