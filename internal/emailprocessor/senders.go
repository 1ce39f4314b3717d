package emailprocessor

import "email-ticket-analyzer/internal/models"

// senderTally counts tickets per sender, remembering first-seen order
type senderTally struct {
	index  map[string]int
	counts []models.SenderCount
}

func newSenderTally() *senderTally {
	return &senderTally{index: make(map[string]int)}
}

func (t *senderTally) add(sender string) {
	i, ok := t.index[sender]
	if !ok {
		i = len(t.counts)
		t.index[sender] = i
		t.counts = append(t.counts, models.SenderCount{Sender: sender})
	}
	t.counts[i].Count++
}

// top returns the sender with the highest count. Ties go to the sender seen
// first. An empty tally yields the NoSender sentinel.
func (t *senderTally) top() models.SenderCount {
	best := models.SenderCount{Sender: models.NoSender}
	for _, sc := range t.counts {
		if sc.Count > best.Count {
			best = sc
		}
	}
	return best
}
