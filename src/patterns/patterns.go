package patterns

import (
	"bytes"
	_ "embed"
	"fmt"
	"gopkg.in/yaml.v3"
	"lifeedit/src/universe"
	"os"
	"sort"
	"unicode/utf8"
)

//Pattern is a starting grid written as text rows
type Pattern struct {
	Name  string   `yaml:"name"`
	Descr string   `yaml:"descr"`
	Alive string   `yaml:"alive"`
	Dead  string   `yaml:"dead"`
	Rows  []string `yaml:"rows"`
}

//go:embed catalog.yaml
var catalogData []byte

var catalog = mustParseCatalog(catalogData)

//Grid builds the grid described by the pattern
func (p Pattern) Grid() (*universe.Grid, error) {
	alive, err := marker(p.Alive, 'X')
	if err != nil {
		return nil, fmt.Errorf("pattern %q: alive marker: %w", p.Name, err)
	}
	dead, err := marker(p.Dead, '.')
	if err != nil {
		return nil, fmt.Errorf("pattern %q: dead marker: %w", p.Name, err)
	}
	g, err := universe.LoadPattern(p.Rows, alive, dead)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
	}
	return g, nil
}

//Names returns the catalog pattern names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//Lookup returns the catalog pattern with the given name
func Lookup(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

//Load builds the grid for the catalog pattern with the given name
func Load(name string) (*universe.Grid, error) {
	p, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	return p.Grid()
}

//LoadFile reads a single pattern document from path and builds its grid
func LoadFile(path string) (*universe.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Pattern
	if err := decodeStrict(data, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}
	return p.Grid()
}

func marker(s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%w: marker %q must be a single character", universe.ErrMalformedPattern, s)
	}
	return r, nil
}

func decodeStrict(data []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

func mustParseCatalog(data []byte) map[string]Pattern {
	var list []Pattern
	if err := decodeStrict(data, &list); err != nil {
		panic(fmt.Sprintf("patterns: bad catalog: %v", err))
	}
	m := make(map[string]Pattern, len(list))
	for _, p := range list {
		m[p.Name] = p
	}
	return m
}
