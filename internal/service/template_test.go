package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplateKnownNames(t *testing.T) {
	for _, name := range TemplateNames() {
		specs := ExpandTemplate(name)
		assert.NotEmpty(t, specs, "template %q expanded to nothing", name)
	}
}

func TestExpandTemplateIsDeterministic(t *testing.T) {
	first := ExpandTemplate("Squadron")
	second := ExpandTemplate("Squadron")

	assert.Equal(t, first, second)
}

func TestExpandTemplateUnknownFallsBackToDefault(t *testing.T) {
	fallback := ExpandTemplate("No Such Template")
	def := ExpandTemplate(DefaultTemplateName())

	assert.Equal(t, def, fallback)
}

func TestExpandTemplateEnforcesMinimumCapacity(t *testing.T) {
	for _, name := range TemplateNames() {
		for _, spec := range ExpandTemplate(name) {
			assert.GreaterOrEqual(t, spec.MaxCadets, 1, "template %q position %q", name, spec.Title)
		}
	}
}

func TestExpandTemplateCopiesSpecs(t *testing.T) {
	specs := ExpandTemplate("Squadron")
	require.NotEmpty(t, specs)

	specs[0].Title = "Mutated"

	assert.NotEqual(t, "Mutated", ExpandTemplate("Squadron")[0].Title)
}

func TestBuildPositionsStartUnassigned(t *testing.T) {
	positions := buildPositions(ExpandTemplate("Wing"))

	require.NotEmpty(t, positions)
	for _, position := range positions {
		assert.NotNil(t, position.AssignedCadets)
		assert.Empty(t, position.AssignedCadets)
	}
}
