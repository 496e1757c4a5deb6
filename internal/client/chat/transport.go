package chat

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/samples"
)

// Transport is the role-specific chat backend.
type Transport interface {
	Conversations(ctx context.Context) ([]models.Conversation, error)
	Messages(ctx context.Context, conversationID models.ID) ([]models.Message, error)
	// Send returns the server id of the stored message, if the backend
	// reports one.
	Send(ctx context.Context, conv models.Conversation, text string) (models.ID, error)
	SampleConversations() []models.Conversation
}

// ClientAPI is the client-side chat API (/api/chat/...).
type ClientAPI interface {
	ChatUsers(ctx context.Context) ([]models.Conversation, error)
	ChatMessages(ctx context.Context, userID models.ID) ([]models.Message, error)
	SendChatMessage(ctx context.Context, receiverID models.ID, text string) (models.ID, error)
}

// ClientTransport talks to lawyers; a conversation is keyed by the lawyer's
// user id.
type ClientTransport struct {
	API  ClientAPI
	Self models.ID
}

func (t ClientTransport) Conversations(ctx context.Context) ([]models.Conversation, error) {
	return t.API.ChatUsers(ctx)
}

func (t ClientTransport) Messages(ctx context.Context, id models.ID) ([]models.Message, error) {
	msgs, err := t.API.ChatMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		msgs[i] = t.Normalize(msgs[i])
	}
	return msgs, nil
}

// normalize maps the server's own-message markers onto CurrentUserMarker.
func (t ClientTransport) Normalize(m models.Message) models.Message {
	if m.SenderID == "current" || (t.Self != "" && m.SenderID == t.Self.String()) {
		m.SenderID = models.CurrentUserMarker
	}
	return m
}

func (t ClientTransport) Send(ctx context.Context, conv models.Conversation, text string) (models.ID, error) {
	return t.API.SendChatMessage(ctx, conv.CounterpartyID, text)
}

func (t ClientTransport) SampleConversations() []models.Conversation {
	return samples.ClientConversations()
}

// LawyerAPI is the lawyer-side chat API (/api/lawyer/chats/...).
type LawyerAPI interface {
	LawyerChats(ctx context.Context) ([]models.Conversation, error)
	LawyerChatMessages(ctx context.Context, chatID models.ID) ([]models.Message, error)
	SendLawyerMessage(ctx context.Context, chatID models.ID, text string) (models.ID, error)
}

// LawyerTransport backs the lawyer's communication portal.
type LawyerTransport struct {
	API LawyerAPI
}

func (t LawyerTransport) Conversations(ctx context.Context) ([]models.Conversation, error) {
	return t.API.LawyerChats(ctx)
}

func (t LawyerTransport) Messages(ctx context.Context, id models.ID) ([]models.Message, error) {
	return t.API.LawyerChatMessages(ctx, id)
}

func (t LawyerTransport) Send(ctx context.Context, conv models.Conversation, text string) (models.ID, error) {
	return t.API.SendLawyerMessage(ctx, conv.ID, text)
}

func (t LawyerTransport) SampleConversations() []models.Conversation {
	return samples.LawyerConversations()
}
