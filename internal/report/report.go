package report

import (
	"fmt"
	"strings"

	"email-ticket-analyzer/internal/models"
)

const (
	title     = "Email Support Ticket Analysis Report"
	separator = "=========================================="
)

// Render formats an analysis as the fixed plain-text summary, ending in a newline
func Render(result models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "High Priority Tickets: %d\n", result.PriorityCounts[models.HighPriority])
	fmt.Fprintf(&b, "Medium Priority Tickets: %d\n", result.PriorityCounts[models.MediumPriority])
	fmt.Fprintf(&b, "Low Priority Tickets: %d\n", result.PriorityCounts[models.LowPriority])
	fmt.Fprintf(&b, "Most Frequent Sender: %s (%d tickets)\n", result.MostFrequentSender.Sender, result.MostFrequentSender.Count)
	fmt.Fprintf(&b, "Total Emails Processed: %d\n", result.TotalEmails)

	return b.String()
}
