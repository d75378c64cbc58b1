package domain

// FilterExtension is the file extension of Visual Studio solution filters.
const FilterExtension = ".slnf"

// FilterDocument is the parsed content of a .slnf file.
type FilterDocument struct {
	Solution FilterSolution `json:"solution"`
}

// FilterSolution is the "solution" object of a filter document. Paths keep the
// exact text found in the file.
type FilterSolution struct {
	Path     string   `json:"path"`
	Projects []string `json:"projects"`
}
