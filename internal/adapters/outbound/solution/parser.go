// Package solution reads Visual Studio solution files (.sln and .slnx) and
// lists the projects and folders they declare.
package solution

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

// FolderTypeGUID identifies solution folders in .sln files.
const FolderTypeGUID = "2150E333-8FDC-42A3-9474-1A3956D46DE8"

var (
	ErrMissingHeader = errors.New("no solution file format header")
	ErrUnexpectedEOF = errors.New("unexpected end of file")
	ErrBadProject    = errors.New("malformed project declaration")
	ErrNotSolution   = errors.New("root element is not Solution")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser implements domain.SolutionParser.
type Parser struct{}

// New creates a Parser.
func New() *Parser { return &Parser{} }

// ParseSolution picks the XML grammar for .slnx names and the text grammar
// otherwise. Entries are returned in declaration order.
func (p *Parser) ParseSolution(name string, data []byte) ([]domain.SolutionEntry, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if strings.EqualFold(filepath.Ext(name), ".slnx") {
		return parseSlnx(data)
	}
	return parseSln(data)
}
