package models

import "time"

// CurrentUserMarker is the SenderID of messages written by the logged-in user.
const CurrentUserMarker = "current-user"

// Conversation is one entry of the chat sidebar.
type Conversation struct {
	ID                 ID
	CounterpartyID     ID
	CounterpartyName   string
	LastMessagePreview string
	UnreadCount        int
}

// MessageStatus tracks the optimistic-send lifecycle of a local message.
// Messages received from the server are always MessageConfirmed.
type MessageStatus string

const (
	MessagePending    MessageStatus = "pending"
	MessageConfirmed  MessageStatus = "confirmed"
	MessageRolledBack MessageStatus = "rolled-back"
)

// Message is one chat line.
type Message struct {
	ID         ID
	SenderID   string
	SenderName string
	Text       string
	Timestamp  time.Time

	// ClientID is set only on messages created locally by an optimistic send.
	ClientID string
	Status   MessageStatus
}

// ByTimestamp orders messages oldest first; use with slices.SortStableFunc.
func ByTimestamp(a, b Message) int {
	return a.Timestamp.Compare(b.Timestamp)
}

// Mine reports whether the current user wrote m.
func (m Message) Mine() bool {
	return m.SenderID == CurrentUserMarker
}
