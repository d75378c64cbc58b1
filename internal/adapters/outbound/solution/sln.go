package solution

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

const headerPrefix = "Microsoft Visual Studio Solution File, Format Version"

// Project("{TYPE}") = "Name", "Path", "{GUID}"
var projectLine = regexp.MustCompile(`^Project\(\s*"\{([^}]*)\}"\s*\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"\{([^}]*)\}"\s*$`)

func parseSln(data []byte) ([]domain.SolutionEntry, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries    []domain.SolutionEntry
		lineNo     int
		seenHeader bool
		inProject  bool
		projectAt  int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !seenHeader {
			if strings.HasPrefix(line, headerPrefix) {
				seenHeader = true
				continue
			}
			if strings.HasPrefix(line, "#") || !strings.HasPrefix(line, "Project") {
				// Comment lines and the VisualStudioVersion preamble can come first.
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingHeader)
		}

		switch {
		case inProject && line == "EndProject":
			inProject = false
		case inProject:
			// ProjectSection blocks and dependencies are not needed.
		case strings.HasPrefix(line, "Project("):
			m := projectLine.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("line %d: %w: %s", lineNo, ErrBadProject, line)
			}
			typeGUID := strings.ToUpper(m[1])
			entries = append(entries, domain.SolutionEntry{
				Name:     m[2],
				Path:     m[3],
				TypeGUID: typeGUID,
				IsFolder: typeGUID == FolderTypeGUID,
			})
			inProject = true
			projectAt = lineNo
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading solution: %w", err)
	}

	if !seenHeader {
		return nil, ErrMissingHeader
	}
	if inProject {
		return nil, fmt.Errorf("project declared at line %d has no EndProject: %w", projectAt, ErrUnexpectedEOF)
	}
	return entries, nil
}
