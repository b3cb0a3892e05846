package parser

import (
	"strings"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
)

type labelSet map[string]struct{}

func newLabelSet(labels ...string) labelSet {
	s := make(labelSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

func (s labelSet) has(label string) bool {
	_, ok := s[label]
	return ok
}

// Normalized labels of the description section.
var descriptionLabels = newLabelSet(
	"illustration",
	"description",
	"feasibility",
	"advantages",
	"disadvantages",
	"scheme",
)

// Normalized labels of the construction-consideration section.
var considerationLabels = newLabelSet(
	"foundation installation schedule",
	"installation schedule",
	"equipment/subcontractors necessary for foundations",
	"equipment/subcontractors",
	"spoils handling",
	"certainty of improvement",
	"authority having jurisdiction approval",
	"noise",
	"vibration",
	"cost",
	"market competition",
	"market familiarity",
)

// Rows rendered verbatim, without rating split or bullets.
var plainTextLabels = newLabelSet("feasibility")

// NormalizeLabel trims and lower-cases a row label for matching.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Classify assigns a row label to its section.
func Classify(label string) models.Section {
	norm := NormalizeLabel(label)
	switch {
	case descriptionLabels.has(norm):
		return models.SectionDescription
	case considerationLabels.has(norm):
		return models.SectionConsideration
	default:
		return models.SectionOther
	}
}

// IsPlainText reports whether a row is exempt from rating split and bulletization.
func IsPlainText(label string) bool {
	return plainTextLabels.has(NormalizeLabel(label))
}

// Partition groups row indices by section, keeping source order within each group.
func Partition(labels []string) (description, consideration, other []int) {
	for i, l := range labels {
		switch Classify(l) {
		case models.SectionDescription:
			description = append(description, i)
		case models.SectionConsideration:
			consideration = append(consideration, i)
		default:
			other = append(other, i)
		}
	}
	return description, consideration, other
}
