package emailprocessor

import (
	"fmt"

	"email-ticket-analyzer/internal/classifier"
	"email-ticket-analyzer/internal/logging"
	"email-ticket-analyzer/internal/mailparse"
	"email-ticket-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CategorizeFunc assigns a priority from a subject and body
type CategorizeFunc func(subject, body string) models.Priority

type Processor struct {
	categorize CategorizeFunc
}

// NewProcessor creates a Processor backed by the fixed keyword classifier
func NewProcessor() *Processor {
	return &Processor{categorize: classifier.Categorize}
}

// Analyze runs a dump through the default Processor
func Analyze(raw string) models.AnalysisResult {
	return NewProcessor().Analyze(raw)
}

// Analyze orchestrates the triage workflow:
// parse → skip incomplete → classify → tally priorities and senders
func (p *Processor) Analyze(raw string) models.AnalysisResult {
	locallog := logging.Log.WithField("trace_id", uuid.New().String())

	records := mailparse.Parse(raw)
	locallog.Debugf("Parsed %d records", len(records))

	counts := models.NewPriorityCounts()
	senders := newSenderTally()

	for i := range records {
		rec := &records[i]
		if !rec.Complete() {
			locallog.WithFields(logrus.Fields{
				"record":  i,
				"missing": fmt.Sprint(rec.Missing()),
			}).Debug("Incomplete record, skip ...")
			continue
		}

		counts[p.categorize(rec.Subject, rec.Body)]++
		senders.add(rec.Sender)
	}

	result := models.AnalysisResult{
		PriorityCounts:     counts,
		MostFrequentSender: senders.top(),
		TotalEmails:        len(records),
	}

	locallog.WithFields(logrus.Fields{
		"high":   counts[models.HighPriority],
		"medium": counts[models.MediumPriority],
		"low":    counts[models.LowPriority],
		"total":  result.TotalEmails,
	}).Debug("Analysis complete")

	return result
}
