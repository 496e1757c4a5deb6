package client

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

// Wire shapes of the two chat APIs. They predate the unified models and are
// mapped onto models.Conversation / models.Message here.

type chatUserDTO struct {
	ID          models.ID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	LastMessage string    `json:"lastMessage"`
	Unread      int       `json:"unread"`
}

func (u chatUserDTO) model() models.Conversation {
	return models.Conversation{
		ID:                 u.ID,
		CounterpartyID:     u.ID,
		CounterpartyName:   u.Name,
		LastMessagePreview: u.LastMessage,
		UnreadCount:        u.Unread,
	}
}

type lawyerChatDTO struct {
	ID          models.ID `json:"id"`
	ClientID    models.ID `json:"clientId"`
	ClientName  string    `json:"clientName"`
	LastMessage string    `json:"lastMessage"`
	Unread      int       `json:"unread"`
}

func (c lawyerChatDTO) model() models.Conversation {
	cp := c.ClientID
	if cp == "" {
		cp = c.ID
	}
	return models.Conversation{
		ID:                 c.ID,
		CounterpartyID:     cp,
		CounterpartyName:   c.ClientName,
		LastMessagePreview: c.LastMessage,
		UnreadCount:        c.Unread,
	}
}

type chatMessageDTO struct {
	ID         models.ID `json:"id"`
	SenderID   models.ID `json:"senderId"`
	SenderName string    `json:"senderName"`
	Message    string    `json:"message"`
	Timestamp  string    `json:"timestamp"`
}

func chatMessages(dto []chatMessageDTO) []models.Message {
	out := make([]models.Message, len(dto))
	for i, m := range dto {
		out[i] = models.Message{
			ID:         m.ID,
			SenderID:   m.SenderID.String(),
			SenderName: m.SenderName,
			Text:       m.Message,
			Timestamp:  parseTimestamp(m.Timestamp),
			Status:     models.MessageConfirmed,
		}
	}
	slices.SortStableFunc(out, models.ByTimestamp)
	return out
}

type lawyerMessageDTO struct {
	ID      models.ID `json:"id"`
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	Time    string    `json:"time"`
}

func (m lawyerMessageDTO) model(chatID models.ID) models.Message {
	msg := models.Message{
		ID:        m.ID,
		SenderID:  chatID.String(),
		Text:      m.Message,
		Timestamp: parseTimestamp(m.Time),
		Status:    models.MessageConfirmed,
	}
	if m.Sender == "lawyer" {
		msg.SenderID = models.CurrentUserMarker
	}
	return msg
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"}

// parseTimestamp accepts RFC 3339 and the short local formats the lawyer API
// emits. Unparseable values yield the zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

func lawyerMessages(chatID models.ID, dto []lawyerMessageDTO) []models.Message {
	out := make([]models.Message, len(dto))
	for i, m := range dto {
		out[i] = m.model(chatID)
	}
	slices.SortStableFunc(out, models.ByTimestamp)
	return out
}
