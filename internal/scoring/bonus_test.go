package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
)

func newTestBonusCalculator(t *testing.T) *BonusCalculator {
	t.Helper()
	cfg, err := config.FromTemplate(config.TemplateItalyMachinery)
	require.NoError(t, err)
	return NewBonusCalculator(cfg)
}

func TestBonusesAllFire(t *testing.T) {
	calc := newTestBonusCalculator(t)

	bonuses := calc.Calculate(&domain.Lead{
		Address: "contact@hydraulic-oem.it",
		Company: "Hydraulic OEM Manufacturer",
		Country: "Italy",
	})

	assert.InDelta(t, 1.3, bonuses.OEM, 1e-9)
	assert.InDelta(t, 2.0, bonuses.Geography, 1e-9)
	assert.InDelta(t, 1.2, bonuses.Domain, 1e-9)
	assert.InDelta(t, 3.12, bonuses.Product(), 1e-9)
}

func TestBonusesNoneFire(t *testing.T) {
	calc := newTestBonusCalculator(t)

	bonuses := calc.Calculate(&domain.Lead{
		Address: "jane@consultancy.example",
		Company: "Generic Trading",
		Country: "Brazil",
	})

	assert.InDelta(t, 1.0, bonuses.Product(), 1e-9)
}

func TestBonusItalianOEMTerm(t *testing.T) {
	calc := newTestBonusCalculator(t)

	bonuses := calc.Calculate(&domain.Lead{Company: "Produttore di pompe"})
	assert.InDelta(t, 1.3, bonuses.OEM, 1e-9)
}

func TestBonusEmptyLead(t *testing.T) {
	calc := newTestBonusCalculator(t)

	bonuses := calc.Calculate(&domain.Lead{})
	assert.InDelta(t, 1.0, bonuses.Product(), 1e-9)
}

func TestBonusFactorDisabled(t *testing.T) {
	assert.Equal(t, 1.0, bonusFactor(0))
	assert.Equal(t, 1.0, bonusFactor(0.5))
	assert.Equal(t, 1.3, bonusFactor(1.3))
}
