package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Hydraulic OEM", want: "hydraulic oem"},
		{name: "strips italian accents", input: "Società Metallurgica", want: "societa metallurgica"},
		{name: "strips german umlauts", input: "Universität", want: "universitat"},
		{name: "trims whitespace", input: "  Milano  ", want: "milano"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestFoldAll(t *testing.T) {
	got := FoldAll([]string{"Società", "", "  ", "OEM"})
	assert.Equal(t, []string{"societa", "oem"}, got)
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hyphens become spaces", input: "non-profit foundation", want: "non profit foundation"},
		{name: "domain separators", input: "hydraulic-oem.it", want: "hydraulic oem it"},
		{name: "collapses runs", input: "a  -  b", want: "a b"},
		{name: "keeps digits", input: "model 42", want: "model 42"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}
