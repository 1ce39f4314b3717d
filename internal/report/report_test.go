package report

import (
	"strings"
	"testing"

	"email-ticket-analyzer/internal/emailprocessor"
	"email-ticket-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	result := models.AnalysisResult{
		PriorityCounts: models.PriorityCounts{
			models.HighPriority:   2,
			models.MediumPriority: 2,
			models.LowPriority:    1,
		},
		MostFrequentSender: models.SenderCount{Sender: "user1@example.com", Count: 2},
		TotalEmails:        5,
	}

	expected := `Email Support Ticket Analysis Report
==========================================
High Priority Tickets: 2
Medium Priority Tickets: 2
Low Priority Tickets: 1
Most Frequent Sender: user1@example.com (2 tickets)
Total Emails Processed: 5
`

	assert.Equal(t, expected, Render(result))
}

func TestRender_EmptyInput(t *testing.T) {
	got := Render(emailprocessor.Analyze(""))

	expected := "Email Support Ticket Analysis Report\n" +
		strings.Repeat("=", 42) + "\n" +
		"High Priority Tickets: 0\n" +
		"Medium Priority Tickets: 0\n" +
		"Low Priority Tickets: 0\n" +
		"Most Frequent Sender: None (0 tickets)\n" +
		"Total Emails Processed: 0\n"

	assert.Equal(t, expected, got)
}

func TestRender_SeparatorWidth(t *testing.T) {
	lines := strings.Split(Render(models.AnalysisResult{PriorityCounts: models.NewPriorityCounts()}), "\n")

	assert.Len(t, lines, 8, "seven lines plus the empty string after the trailing newline")
	assert.Equal(t, 42, len(lines[1]))
	assert.Equal(t, strings.Repeat("=", 42), lines[1])
	assert.Empty(t, lines[7])
}
