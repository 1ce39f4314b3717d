package models

// Priority represents the triage tier assigned to a ticket
type Priority int

const (
	HighPriority Priority = iota
	MediumPriority
	LowPriority
)

// Priorities lists every tier in precedence order
var Priorities = []Priority{HighPriority, MediumPriority, LowPriority}

func (p Priority) String() string {
	switch p {
	case HighPriority:
		return "High Priority"
	case MediumPriority:
		return "Medium Priority"
	case LowPriority:
		return "Low Priority"
	default:
		return "Unknown Priority"
	}
}
