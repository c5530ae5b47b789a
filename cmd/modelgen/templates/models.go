package templates

import (
	"sort"
)

const watchableImport = "github.com/delaneyj/livesignals/watchable"

// File is one generated source file.
type File struct {
	Package string   `yaml:"package"`
	Imports []string `yaml:"imports"`
	Models  []Model  `yaml:"models"`
}

// Model becomes a struct with one watchable cell per property.
type Model struct {
	Name      string     `yaml:"name"`
	Variables []Property `yaml:"variables"`
	Computeds []Property `yaml:"computeds"`
}

type Property struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Go expression for the initial value of a variable
	Default string `yaml:"default"`

	computed bool
}

func (f *File) ImportPaths() []string {
	seen := map[string]bool{watchableImport: true}
	paths := []string{watchableImport}
	for _, imp := range f.Imports {
		if !seen[imp] {
			seen[imp] = true
			paths = append(paths, imp)
		}
	}
	sort.Strings(paths)
	return paths
}

// ImportLines is the body of the import block, one quoted path per line with
// the standard library grouped first.
func (f *File) ImportLines() []string {
	var std, other []string
	for _, path := range f.ImportPaths() {
		if isStdlib(path) {
			std = append(std, path)
		} else {
			other = append(other, path)
		}
	}
	lines := make([]string, 0, len(std)+len(other)+1)
	for _, path := range std {
		lines = append(lines, "\t\""+path+"\"")
	}
	if len(std) > 0 && len(other) > 0 {
		lines = append(lines, "")
	}
	for _, path := range other {
		lines = append(lines, "\t\""+path+"\"")
	}
	return lines
}

// Properties lists variables first, then computeds.
func (m Model) Properties() []Property {
	props := make([]Property, 0, len(m.Variables)+len(m.Computeds))
	props = append(props, m.Variables...)
	for _, p := range m.Computeds {
		p.computed = true
		props = append(props, p)
	}
	return props
}

// Field is the struct field name of p, padded to line up with the widest one.
func (m Model) Field(p Property) string {
	width := 0
	for _, other := range m.Properties() {
		width = max(width, len(other.FieldName()))
	}
	return padRight(p.FieldName(), width)
}

func (p Property) FieldName() string {
	return lowerInitialism(p.Name)
}

func (p Property) CellType() string {
	if p.computed {
		return "*watchable.Computed[" + p.Type + "]"
	}
	return "*watchable.Variable[" + p.Type + "]"
}

func (p Property) DefaultValue() string {
	if p.Default != "" {
		return p.Default
	}
	if zero, ok := zeroValues[p.Type]; ok {
		return zero
	}
	return "*new(" + p.Type + ")"
}

var zeroValues = map[string]string{
	"string":  `""`,
	"bool":    "false",
	"int":     "0",
	"int8":    "0",
	"int16":   "0",
	"int32":   "0",
	"int64":   "0",
	"uint":    "0",
	"uint8":   "0",
	"uint16":  "0",
	"uint32":  "0",
	"uint64":  "0",
	"float32": "0",
	"float64": "0",
	"byte":    "0",
	"rune":    "0",
}
