package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeScalarOverride(t *testing.T) {
	base, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	override := &FilterConfig{}
	override.Metadata.Name = "custom"
	override.Scoring.Thresholds.High = 90

	out := Merge(base, override)

	assert.Equal(t, "custom", out.Metadata.Name)
	assert.Equal(t, 90.0, out.Scoring.Thresholds.High)
	// Unset override scalars keep the base value.
	assert.Equal(t, base.Metadata.Version, out.Metadata.Version)
	assert.Equal(t, base.Scoring.Thresholds.Medium, out.Scoring.Thresholds.Medium)
}

func TestMergeReplacesSlices(t *testing.T) {
	base, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	override := &FilterConfig{}
	override.CompanyKeywords.Primary.Positive = []string{"pumps"}

	out := Merge(base, override)

	// Array overrides replace wholesale, they never concatenate.
	assert.Equal(t, []string{"pumps"}, out.CompanyKeywords.Primary.Positive)
	// Nil override slices keep the base list.
	assert.Equal(t, base.CompanyKeywords.Primary.Negative, out.CompanyKeywords.Primary.Negative)
	assert.Equal(t, base.Exclusions.PersonalDomains, out.Exclusions.PersonalDomains)
}

func TestMergeMapsKeyWise(t *testing.T) {
	base, err := FromTemplate(TemplateItalyMachinery)
	require.NoError(t, err)
	override := &FilterConfig{}
	override.GeographicRules.Multipliers = map[string]float64{
		"Germany": 0.5,
		"Spain":   0.7,
	}

	out := Merge(base, override)

	assert.Equal(t, 0.5, out.GeographicRules.Multipliers["Germany"])
	assert.Equal(t, 0.7, out.GeographicRules.Multipliers["Spain"])
	// Keys absent from the override survive.
	assert.Equal(t, 1.0, out.GeographicRules.Multipliers["Italy"])
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	baseKeywords := len(base.CompanyKeywords.Primary.Positive)
	baseMultipliers := len(base.GeographicRules.Multipliers)

	override := &FilterConfig{}
	override.CompanyKeywords.Primary.Positive = []string{"pumps"}
	override.GeographicRules.Multipliers = map[string]float64{"Italy": 0.1}

	out := Merge(base, override)
	out.CompanyKeywords.Primary.Positive[0] = "mutated"

	assert.Len(t, base.CompanyKeywords.Primary.Positive, baseKeywords)
	assert.NotContains(t, base.CompanyKeywords.Primary.Positive, "mutated")
	assert.Len(t, base.GeographicRules.Multipliers, baseMultipliers)
	assert.Equal(t, []string{"pumps"}, override.CompanyKeywords.Primary.Positive)
}

func TestMergeNilInputs(t *testing.T) {
	base, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)

	assert.Equal(t, base, Merge(base, nil))
	assert.Equal(t, base, Merge(nil, base))
}
