package classifier

import (
	"strings"

	"email-ticket-analyzer/internal/models"
)

// Tier is a keyword set and the priority it assigns on a match
type Tier struct {
	Priority models.Priority
	Keywords []string
}

// tiers are evaluated top to bottom. Matching is substring containment, so
// "apiary" hits "api" and "download" hits "down".
var tiers = []Tier{
	{
		Priority: models.HighPriority,
		Keywords: []string{"urgent", "critical", "immediate", "emergency", "blocked", "down", "outage"},
	},
	{
		Priority: models.MediumPriority,
		Keywords: []string{"verification", "login", "api", "integration", "access", "authentication", "account"},
	},
}

// fallback is returned when no tier matches
const fallback = models.LowPriority

// Tiers returns a copy of the keyword tiers in evaluation order
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		out[i] = Tier{
			Priority: t.Priority,
			Keywords: append([]string(nil), t.Keywords...),
		}
	}
	return out
}

// Categorize assigns a priority to an email from its subject and body
func Categorize(subject, body string) models.Priority {
	text := strings.ToLower(subject + " " + body)

	for _, tier := range tiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(text, keyword) {
				return tier.Priority
			}
		}
	}

	return fallback
}
