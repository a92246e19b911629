package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg, err := config.FromTemplate(config.TemplateItalyMachinery)
	require.NoError(t, err)
	cfg.Exclusions.ExcludedCountries = []string{"Russia", "North Korea"}

	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)
	return engine
}

func TestClassifyRolePrefix(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify(&domain.Lead{Address: "hr@somecompany.com"})

	require.True(t, verdict.Excluded)
	require.Len(t, verdict.Reasons, 1)
	assert.Equal(t, domain.CategoryRolePrefix, verdict.Reasons[0].Category)
	assert.Equal(t, "hr@", verdict.MatchedTerm)
}

func TestClassifyPersonalProvider(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		address string
		term    string
	}{
		{address: "mario.rossi@gmail.com", term: "gmail.com"},
		{address: "giulia@libero.it", term: "libero.it"},
		{address: "hans@web.de", term: "web.de"},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			verdict := engine.Classify(&domain.Lead{Address: tt.address})
			require.True(t, verdict.Excluded)
			assert.Equal(t, domain.CategoryPersonalProvider, verdict.Reasons[0].Category)
			assert.Equal(t, tt.term, verdict.MatchedTerm)
		})
	}
}

func TestClassifyExcludedCountry(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify(&domain.Lead{
		Address: "contact@machinery.example",
		Country: "Russia",
	})

	require.True(t, verdict.Excluded)
	assert.Equal(t, domain.CategoryExcludedGeography, verdict.Reasons[0].Category)
}

func TestClassifySuspiciousPattern(t *testing.T) {
	engine := newTestEngine(t)

	tests := []string{
		"test@machinery.example",
		"demo-01@machinery.example",
		"a1b2c3d4e5f6a1b2c3d4e5f6xx@machinery.example",
		"order12345678@machinery.example",
	}
	for _, address := range tests {
		t.Run(address, func(t *testing.T) {
			verdict := engine.Classify(&domain.Lead{Address: address})
			require.True(t, verdict.Excluded, "expected exclusion for %s", address)
			assert.Equal(t, domain.CategorySuspiciousPattern, verdict.Reasons[0].Category)
			assert.Equal(t, domain.SeverityHigh, verdict.Reasons[0].Severity)
		})
	}
}

func TestClassifyVertical(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		lead domain.Lead
	}{
		{
			name: "italian healthcare term",
			lead: domain.Lead{Address: "contatti@niguarda.example", Company: "Ospedale Niguarda"},
		},
		{
			name: "english education term",
			lead: domain.Lead{Address: "contact@milanpoly.example", Company: "Milan Polytechnic University"},
		},
		{
			name: "hyphenated term in description",
			lead: domain.Lead{Address: "contact@goodworks.example", Description: "a non-profit for clean water"},
		},
		{
			name: "term inside the domain",
			lead: domain.Lead{Address: "booking@grandhotel.example"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.Classify(&tt.lead)
			require.True(t, verdict.Excluded)
			assert.Equal(t, domain.CategoryExcludedVertical, verdict.Reasons[0].Category)
			assert.NotEmpty(t, verdict.MatchedTerm)
		})
	}
}

func TestClassifyConfiguredVerticalTerms(t *testing.T) {
	cfg, err := config.FromTemplate(config.TemplateItalyMachinery)
	require.NoError(t, err)
	// Explicit terms replace the built-in defaults for that vertical.
	cfg.Exclusions.ExcludedIndustries = map[string][]string{
		"healthcare": {"veterinaria"},
	}

	engine, err := NewEngine(cfg, nil)
	require.NoError(t, err)

	verdict := engine.Classify(&domain.Lead{
		Address: "info@vet.example", Company: "Clinica Veterinaria Milano",
	})
	require.True(t, verdict.Excluded)
	assert.Equal(t, "veterinaria", verdict.MatchedTerm)

	// The default term no longer applies once overridden.
	verdict = engine.Classify(&domain.Lead{
		Address: "info@osp.example", Company: "Ospedale Civile",
	})
	assert.False(t, verdict.Excluded)
}

func TestClassifyQualifiedLeadPasses(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify(&domain.Lead{
		Address: "contact@hydraulic-oem.it",
		Company: "Hydraulic OEM Manufacturer",
		Country: "Italy",
	})

	assert.False(t, verdict.Excluded)
	assert.Empty(t, verdict.Reasons)
}

func TestClassifyEmptyLead(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify(&domain.Lead{})

	assert.False(t, verdict.Excluded)
}

func TestClassifyFirstMatchWins(t *testing.T) {
	engine := newTestEngine(t)

	// hr@gmail.com matches both the personal-provider and the role-prefix
	// rule; the domain check runs first.
	verdict := engine.Classify(&domain.Lead{Address: "hr@gmail.com"})

	require.True(t, verdict.Excluded)
	require.Len(t, verdict.Reasons, 1)
	assert.Equal(t, domain.CategoryPersonalProvider, verdict.Reasons[0].Category)
}

func TestClassifyAccentInsensitive(t *testing.T) {
	engine := newTestEngine(t)

	verdict := engine.Classify(&domain.Lead{
		Address: "info@ateneo.example",
		Company: "Università degli Studi",
	})

	require.True(t, verdict.Excluded)
	assert.Equal(t, domain.CategoryExcludedVertical, verdict.Reasons[0].Category)
	assert.Equal(t, "universita", verdict.MatchedTerm)
}

func TestNewEngineBadPattern(t *testing.T) {
	cfg, err := config.FromTemplate(config.TemplateDefault)
	require.NoError(t, err)
	cfg.Exclusions.SuspiciousPatterns = []string{"[unclosed"}

	_, err = NewEngine(cfg, nil)
	assert.Error(t, err)
}
