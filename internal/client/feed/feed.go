// Package feed projects the activity log onto the bounded view shown in the
// cabinet chat.
package feed

import "github.com/dmitrijs2005/volunteer/internal/client/models"

// Size is how many of the most recent messages the feed shows.
const Size = 10

// Presentation icons.
const (
	IconEvent   = "📅"
	IconReport  = "📝"
	IconSystem  = "🎉"
	IconDefault = "💬"
)

// Item is a message ready for rendering.
type Item struct {
	Icon string
	models.Message
}

// Icon maps a message kind to its icon. Unknown kinds get IconDefault.
func Icon(kind models.MessageKind) string {
	switch kind {
	case models.KindEvent:
		return IconEvent
	case models.KindReport:
		return IconReport
	case models.KindSystem:
		return IconSystem
	default:
		return IconDefault
	}
}

// Project returns the last Size messages of log, oldest first. It does not
// modify log and always returns a non-nil slice.
func Project(log []models.Message) []Item {
	start := 0
	if len(log) > Size {
		start = len(log) - Size
	}

	items := make([]Item, 0, len(log)-start)
	for _, m := range log[start:] {
		items = append(items, Item{Icon: Icon(m.Type), Message: m})
	}
	return items
}
