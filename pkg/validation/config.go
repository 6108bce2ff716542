// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
)

// ValidateYear checks if a default year is part of the maturity roadmap.
func ValidateYear(year string) string {
	if year == "" {
		return ""
	}
	if _, ok := dataset.PhaseByYear(year); !ok {
		return fmt.Sprintf("Default year '%s' is not part of the maturity roadmap", year)
	}
	return ""
}

// ValidateScenario checks if a default scenario matches a financial scenario.
// Names are compared exactly.
func ValidateScenario(name string) string {
	if name == "" {
		return ""
	}
	if _, ok := dataset.ScenarioByName(name); !ok {
		return fmt.Sprintf("Default scenario '%s' does not match any financial scenario", name)
	}
	return ""
}

// ValidateSection checks if a default section matches a dashboard section.
func ValidateSection(id string) string {
	if id == "" {
		return ""
	}
	if _, ok := dataset.SectionByID(id); !ok {
		return fmt.Sprintf("Default section '%s' does not match any dashboard section", id)
	}
	return ""
}

// ValidateLink checks that an outbound link is an absolute http(s) URL.
func ValidateLink(name, link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Sprintf("%s link '%s' is not an http(s) URL", name, link)
	}
	return ""
}

// SelectionValidator collects the settings checked against the dataset.
type SelectionValidator struct {
	Year     string
	Scenario string
	Section  string
	Links    map[string]string
}

// ValidateAll validates every setting and returns warnings in a stable order.
func (sv *SelectionValidator) ValidateAll() []string {
	var warnings []string

	for _, warning := range []string{
		ValidateYear(sv.Year),
		ValidateScenario(sv.Scenario),
		ValidateSection(sv.Section),
	} {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	names := make([]string, 0, len(sv.Links))
	for name := range sv.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if warning := ValidateLink(name, sv.Links[name]); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}
