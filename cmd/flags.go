package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorcopt/internal/section"
)

// parseBars parses a bar specification like "4x16" or "4x20+2x20", one
// group per layer from the bottom up.
func parseBars(spec string) ([]section.BarGroup, error) {
	if spec == "" {
		return nil, nil
	}
	var groups []section.BarGroup
	for _, part := range strings.Split(spec, "+") {
		fields := strings.SplitN(part, "x", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid bar group %q, expected COUNTxDIA (e.g. 4x16)", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid bar count in %q: %v", part, err)
		}
		dia, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid bar diameter in %q: %v", part, err)
		}
		groups = append(groups, section.BarGroup{Dia: section.BarDia(dia), Count: count})
	}
	return groups, nil
}

// parseStirrup parses a stirrup specification like "8@150".
func parseStirrup(spec string) (section.Stirrup, error) {
	fields := strings.SplitN(spec, "@", 2)
	if len(fields) != 2 {
		return section.Stirrup{}, fmt.Errorf("invalid stirrup %q, expected DIA@SPACING (e.g. 8@150)", spec)
	}
	dia, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return section.Stirrup{}, fmt.Errorf("invalid stirrup diameter in %q: %v", spec, err)
	}
	spacing, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return section.Stirrup{}, fmt.Errorf("invalid stirrup spacing in %q: %v", spec, err)
	}
	return section.Stirrup{Dia: section.BarDia(dia), Spacing: spacing, Legs: 2}, nil
}

// formatBars renders bar groups back into the CLI notation.
func formatBars(groups []section.BarGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, fmt.Sprintf("%dxφ%dmm", g.Count, g.Dia))
	}
	return strings.Join(parts, " + ")
}
