package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTemplates(t *testing.T) {
	for _, name := range Templates() {
		t.Run(name, func(t *testing.T) {
			cfg, err := FromTemplate(name)
			require.NoError(t, err)
			assert.Nil(t, cfg.Validate())
		})
	}
}

func TestValidateWeightSum(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Scoring.Weights = Weights{
		EmailQuality:       0.2,
		CompanyRelevance:   0.2,
		GeographicPriority: 0.2,
		Engagement:         0.2,
	}

	verr := cfg.Validate()
	require.NotNil(t, verr)

	found := false
	for _, issue := range verr.Issues {
		if issue.Field == "scoring.weights" {
			found = true
			assert.Contains(t, issue.Message, "0.80")
		}
	}
	assert.True(t, found, "expected a scoring.weights issue, got %v", verr.Issues)
}

func TestValidateWeightRange(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Scoring.Weights.EmailQuality = -0.5
	cfg.Scoring.Weights.CompanyRelevance = 1.5

	verr := cfg.Validate()
	require.NotNil(t, verr)
	fields := issueFields(verr)
	assert.Contains(t, fields, "scoring.weights.email_quality")
	assert.Contains(t, fields, "scoring.weights.company_relevance")
}

func TestValidateCollectsAllIssues(t *testing.T) {
	cfg := &FilterConfig{}

	verr := cfg.Validate()
	require.NotNil(t, verr)

	// An empty config violates several independent invariants at once.
	fields := issueFields(verr)
	assert.Contains(t, fields, "metadata.name")
	assert.Contains(t, fields, "metadata.version")
	assert.Contains(t, fields, "target.country")
	assert.Contains(t, fields, "target.industry")
	assert.Contains(t, fields, "target.languages")
	assert.Contains(t, fields, "scoring.weights")
	assert.Contains(t, fields, "scoring.thresholds")
	assert.Contains(t, fields, "company_keywords")
	assert.Contains(t, fields, "email_quality.base_score")
}

func TestValidateThresholdOrdering(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Scoring.Thresholds = Thresholds{High: 50, Medium: 50, Low: 60}

	verr := cfg.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, issueFields(verr), "scoring.thresholds")
}

func TestValidateBonusBelowOne(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Scoring.Bonuses.OEM = 0.5

	verr := cfg.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, issueFields(verr), "scoring.bonuses.oem")
}

func TestValidateNameLength(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Metadata.Name = strings.Repeat("x", 101)

	verr := cfg.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, issueFields(verr), "metadata.name")
}

func TestValidateUnknownVertical(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Exclusions.ExcludedIndustries["automotive"] = nil

	verr := cfg.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, issueFields(verr), "exclusions.excluded_industries")
}

func TestValidateBadSuspiciousPattern(t *testing.T) {
	cfg, err := FromTemplate(TemplateDefault)
	require.NoError(t, err)
	cfg.Exclusions.SuspiciousPatterns = append(cfg.Exclusions.SuspiciousPatterns, "[unclosed")

	verr := cfg.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, issueFields(verr), "exclusions.suspicious_patterns")
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{}
	verr.add("scoring.weights", "must sum to 1.0 within 0.01, got %.2f", 0.8)
	assert.Contains(t, verr.Error(), "1 issues")
	assert.Contains(t, verr.Error(), "scoring.weights: must sum to 1.0 within 0.01, got 0.80")
}

func issueFields(verr *ValidationError) []string {
	fields := make([]string, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		fields = append(fields, issue.Field)
	}
	return fields
}
