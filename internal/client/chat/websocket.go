package chat

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/logging"
)

// Stream is one open push channel.
type Stream interface {
	Next() ([]models.Message, error)
	Close() error
}

// StreamOpener is implemented by client.HTTPClient.
type StreamOpener interface {
	OpenChatStream(ctx context.Context, conversationID models.ID, format client.ChatStreamFormat) (*client.ChatStream, error)
}

// WebSocketSubscriber receives pushed messages and switches to its fallback
// subscriber (normally a Poller) when the channel cannot be opened or drops.
type WebSocketSubscriber struct {
	open      func(ctx context.Context, id models.ID) (Stream, error)
	normalize func(models.Message) models.Message
	fallback  Subscriber
	now       func() time.Time
	logger    logging.Logger
}

// NewWebSocketSubscriber opens streams whose frames are decoded as format,
// which must match the role of the logged-in user.
func NewWebSocketSubscriber(api StreamOpener, format client.ChatStreamFormat, fallback Subscriber, logger logging.Logger) *WebSocketSubscriber {
	if logger == nil {
		logger = logging.Nop()
	}
	return &WebSocketSubscriber{
		open: func(ctx context.Context, id models.ID) (Stream, error) {
			s, err := api.OpenChatStream(ctx, id, format)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		fallback: fallback,
		now:      time.Now,
		logger:   logger,
	}
}

// WithNormalizer sets the function applied to every pushed message, e.g.
// ClientTransport.Normalize.
func (w *WebSocketSubscriber) WithNormalizer(fn func(models.Message) models.Message) *WebSocketSubscriber {
	w.normalize = fn
	return w
}

func (w *WebSocketSubscriber) Subscribe(ctx context.Context, id models.ID, onUpdate func(Update)) func() {
	ctx, cancel := context.WithCancel(ctx)

	var (
		mu    sync.Mutex
		unsub func()
	)
	fallBack := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() == nil && unsub == nil {
			unsub = w.fallback.Subscribe(ctx, id, onUpdate)
		}
	}

	stream, err := w.open(ctx, id)
	if err != nil {
		w.logger.Warn(ctx, "push channel unavailable, polling instead", "conversation_id", id, "error", err)
		fallBack()
	} else {
		go func() {
			<-ctx.Done()
			_ = stream.Close()
		}()
		go w.read(ctx, id, stream, onUpdate, fallBack)
	}

	return func() {
		cancel()
		mu.Lock()
		defer mu.Unlock()
		if unsub != nil {
			unsub()
		}
	}
}

func (w *WebSocketSubscriber) read(ctx context.Context, id models.ID, stream Stream, onUpdate func(Update), fallBack func()) {
	for {
		started := w.now()
		msgs, err := stream.Next()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			w.logger.Warn(ctx, "push channel closed, polling instead", "conversation_id", id, "error", err)
			onUpdate(Update{Kind: UpdateError, Err: err, FetchedAt: started})
			fallBack()
			return
		}
		if w.normalize != nil {
			for i := range msgs {
				msgs[i] = w.normalize(msgs[i])
			}
		}
		onUpdate(Update{Kind: UpdateIncremental, Messages: msgs, FetchedAt: started})
	}
}
