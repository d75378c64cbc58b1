package solution

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

func parseSlnx(data []byte) ([]domain.SolutionEntry, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		entries []domain.SolutionEntry
		depth   int
		sawRoot bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading solution XML: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				if el.Name.Local != "Solution" {
					return nil, fmt.Errorf("%w: <%s>", ErrNotSolution, el.Name.Local)
				}
				sawRoot = true
				continue
			}
			switch el.Name.Local {
			case "Folder":
				name := attr(el, "Name")
				entries = append(entries, domain.SolutionEntry{Name: name, Path: name, IsFolder: true})
			case "Project":
				path := attr(el, "Path")
				if path == "" {
					line, _ := dec.InputPos()
					return nil, fmt.Errorf("line %d: %w: Project without Path", line, ErrBadProject)
				}
				entries = append(entries, domain.SolutionEntry{
					Name:     projectName(path),
					Path:     path,
					TypeGUID: attr(el, "Type"),
				})
			}
		case xml.EndElement:
			depth--
		}
	}

	if depth != 0 {
		return nil, ErrUnexpectedEOF
	}
	if !sawRoot {
		return nil, ErrNotSolution
	}
	return entries, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// projectName derives a display name from a project path the way Visual
// Studio does: the file name without extension.
func projectName(path string) string {
	base := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
			break
		}
	}
	for i := len(base) - 1; i > 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}
