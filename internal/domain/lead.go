// Package domain holds the core types shared across the lead-qualification
// library: candidate leads, score results, and exclusion verdicts.
package domain

import "strings"

// Lead represents a single candidate email contact under evaluation.
// Leads arrive deduplicated and syntactically validated; the optional
// company/country/description fields come from an external enrichment
// collaborator. A Lead is immutable input; scoring never mutates it.
type Lead struct {
	Address     string `json:"address"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`
	// SourceContext describes where the address was found,
	// e.g. "contact", "sales", "info", "noreply".
	SourceContext string            `json:"source_context,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Domain returns the part of the address after the last "@", lowercased.
// Returns "" for malformed addresses.
func (l *Lead) Domain() string {
	idx := strings.LastIndex(l.Address, "@")
	if idx < 0 || idx == len(l.Address)-1 {
		return ""
	}
	return strings.ToLower(l.Address[idx+1:])
}

// LocalPart returns the part of the address before the last "@", lowercased.
// Returns "" for malformed addresses.
func (l *Lead) LocalPart() string {
	idx := strings.LastIndex(l.Address, "@")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(l.Address[:idx])
}

// CacheKey returns the normalized address used as the memoization key.
func (l *Lead) CacheKey() string {
	return strings.ToLower(strings.TrimSpace(l.Address))
}
