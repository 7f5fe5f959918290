package roadmap

import "strings"

// Status is one of the four canonical activity lifecycle labels.
type Status string

const (
	StatusTodo       Status = "À faire"
	StatusInProgress Status = "En cours"
	StatusDone       Status = "Terminé"
	StatusCancelled  Status = "Annulé"
)

// ParseStatus maps a free-text or emoji status marker to a canonical status.
// Matching is a case-insensitive substring check in priority order; anything
// unrecognized falls back to StatusTodo, so the function is total.
func ParseStatus(raw string) Status {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "✅") || strings.Contains(lower, "terminé"):
		return StatusDone
	case strings.Contains(lower, "🔄") || strings.Contains(lower, "cours"):
		return StatusInProgress
	case strings.Contains(lower, "❌") || strings.Contains(lower, "annulé"):
		return StatusCancelled
	default:
		return StatusTodo
	}
}
