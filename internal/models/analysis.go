package models

// NoSender is the identity reported when no complete record was tallied
const NoSender = "None"

// PriorityCounts maps each tier to the number of tickets classified into it
type PriorityCounts map[Priority]int

// NewPriorityCounts returns counts with every tier present and set to zero
func NewPriorityCounts() PriorityCounts {
	counts := make(PriorityCounts, len(Priorities))
	for _, p := range Priorities {
		counts[p] = 0
	}
	return counts
}

// Total returns the sum over all tiers
func (c PriorityCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// SenderCount pairs a sender identity with its ticket count
type SenderCount struct {
	Sender string
	Count  int
}

// AnalysisResult is the aggregate produced from one email dump
type AnalysisResult struct {
	PriorityCounts     PriorityCounts
	MostFrequentSender SenderCount
	TotalEmails        int
}
