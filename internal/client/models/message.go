package models

// MessageKind says where an activity message came from.
type MessageKind string

const (
	KindEvent  MessageKind = "event"
	KindReport MessageKind = "report"
	KindSystem MessageKind = "system"
	KindOther  MessageKind = "other"
)

// Message is one entry of the append-only activity log.
type Message struct {
	Type      MessageKind `json:"type"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
}
