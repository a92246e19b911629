package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonesrussell/leadfilter/internal/domain"
)

// Input CSV column names. The header decides the column order; only the
// address column is mandatory.
const (
	colAddress       = "address"
	colCompany       = "company"
	colCountry       = "country"
	colDescription   = "description"
	colSourceContext = "source_context"
)

// readLeads decodes leads from CSV. The first row must be a header naming
// at least the address column.
func readLeads(r io.Reader) ([]*domain.Lead, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty, expected a CSV header")
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colAddress]; !ok {
		return nil, fmt.Errorf("CSV header must contain an %q column, got %v", colAddress, header)
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var leads []*domain.Lead
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}
		address := field(record, colAddress)
		if address == "" {
			continue
		}
		leads = append(leads, &domain.Lead{
			Address:       address,
			Company:       field(record, colCompany),
			Country:       field(record, colCountry),
			Description:   field(record, colDescription),
			SourceContext: field(record, colSourceContext),
		})
	}
	return leads, nil
}

// writeScoredCSV encodes one priority partition with the score breakdown.
func writeScoredCSV(w io.Writer, results []*domain.ScoreResult) error {
	writer := csv.NewWriter(w)
	header := []string{
		"address", "company", "country", "total_score", "priority",
		"email_quality", "company_relevance", "geographic_priority", "engagement",
		"bonus_multiplier",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, res := range results {
		record := []string{
			res.Lead.Address,
			res.Lead.Company,
			res.Lead.Country,
			formatScore(res.TotalScore),
			string(res.Priority),
			formatScore(res.Breakdown.EmailQuality.Raw),
			formatScore(res.Breakdown.CompanyRelevance.Raw),
			formatScore(res.Breakdown.GeographicPriority.Raw),
			formatScore(res.Breakdown.Engagement.Raw),
			formatScore(res.Bonuses.Product()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record for %s: %w", res.Lead.Address, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
