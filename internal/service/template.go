package service

import (
	_ "embed"
	"fmt"
	"sort"

	"cadet-corps-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// PositionSpec is one slot in an organizational template.
type PositionSpec struct {
	Title     string `yaml:"title" json:"title"`
	Rank      string `yaml:"rank" json:"rank"`
	Level     int    `yaml:"level" json:"level"`
	X         int    `yaml:"x" json:"x"`
	Y         int    `yaml:"y" json:"y"`
	MaxCadets int    `yaml:"max_cadets" json:"max_cadets"`
}

type templateCatalog struct {
	Default   string                    `yaml:"default"`
	Templates map[string][]PositionSpec `yaml:"templates"`
}

var catalog templateCatalog

func init() {
	if err := yaml.Unmarshal(templatesYAML, &catalog); err != nil {
		panic(fmt.Sprintf("parse embedded templates: %v", err))
	}
	if _, ok := catalog.Templates[catalog.Default]; !ok {
		panic(fmt.Sprintf("default template %q missing from catalog", catalog.Default))
	}
}

// TemplateNames returns the available template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(catalog.Templates))
	for name := range catalog.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultTemplateName returns the name used when an unknown template is requested.
func DefaultTemplateName() string {
	return catalog.Default
}

// ExpandTemplate materializes the named template into an ordered list of
// position specs. Unknown names fall back to the default template rather
// than failing. The result is deterministic for a given name.
func ExpandTemplate(name string) []PositionSpec {
	specs, ok := catalog.Templates[name]
	if !ok {
		specs = catalog.Templates[catalog.Default]
	}

	out := make([]PositionSpec, len(specs))
	copy(out, specs)
	for i := range out {
		if out[i].MaxCadets < 1 {
			out[i].MaxCadets = 1
		}
	}
	return out
}

// buildPositions turns template specs into unassigned position records.
func buildPositions(specs []PositionSpec) []models.Position {
	positions := make([]models.Position, len(specs))
	for i, spec := range specs {
		positions[i] = models.Position{
			Title:          spec.Title,
			Rank:           spec.Rank,
			Level:          spec.Level,
			X:              spec.X,
			Y:              spec.Y,
			MaxCadets:      spec.MaxCadets,
			AssignedCadets: models.UUIDList{},
		}
	}
	return positions
}
