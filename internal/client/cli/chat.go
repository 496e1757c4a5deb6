package cli

import (
	"context"

	"github.com/dmitrijs2005/lawlink/internal/client/chat"
	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

// Chat opens the messaging screen, optionally with a conversation selected.
func (a *App) Chat(ctx context.Context, args []string) error {
	s := a.requireRole(ctx)
	if s == nil {
		return nil
	}

	vm := a.newChatViewModel(*s)
	defer vm.Close()

	var selected models.ID
	if len(args) > 0 {
		selected = models.ID(args[0])
	}
	return a.runChat(ctx, vm, selected)
}

// newChatViewModel picks the transport from the session role and the
// subscription mechanism from the configuration.
func (a *App) newChatViewModel(s models.Session) *chat.ViewModel {
	var (
		transport chat.Transport
		normalize func(models.Message) models.Message
		frames    client.ChatStreamFormat
	)
	if s.Role == models.RoleLawyer {
		transport, frames = chat.LawyerTransport{API: a.api}, client.LawyerFrames
	} else {
		ct := chat.ClientTransport{API: a.api, Self: s.UserID}
		transport, normalize, frames = ct, ct.Normalize, client.ClientFrames
	}

	logger := a.logger.With("component", "chat", "role", s.Role)
	var sub chat.Subscriber = chat.NewPoller(transport.Messages, a.cfg.PollInterval, logger)
	if a.cfg.WebSocket {
		sub = chat.NewWebSocketSubscriber(a.api, frames, sub, logger).WithNormalizer(normalize)
	}

	return chat.NewViewModel(transport, sub, chat.WithLogger(logger), chat.WithClock(a.now))
}
