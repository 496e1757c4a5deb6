package chat

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/logging"
)

type UpdateKind int

const (
	// UpdateLoading announces that a refresh has started.
	UpdateLoading UpdateKind = iota
	// UpdateSnapshot carries the full message log.
	UpdateSnapshot
	// UpdateIncremental carries new messages only.
	UpdateIncremental
	// UpdateError reports a failed refresh; the current log stays.
	UpdateError
)

type Update struct {
	Kind     UpdateKind
	Messages []models.Message
	// FetchedAt is when the request producing this update was issued.
	FetchedAt time.Time
	Err       error
}

// Subscriber delivers updates for one conversation until the returned
// unsubscribe function is called or ctx ends. Delivery is at least once;
// onUpdate is never called concurrently for one subscription.
type Subscriber interface {
	Subscribe(ctx context.Context, conversationID models.ID, onUpdate func(Update)) (unsubscribe func())
}

// FetchFunc loads the full log of a conversation.
type FetchFunc func(ctx context.Context, conversationID models.ID) ([]models.Message, error)

// Poller re-fetches the whole log on a fixed interval.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
	logger   logging.Logger
}

// DefaultPollInterval is used when NewPoller gets a non-positive interval.
const DefaultPollInterval = 2 * time.Second

func NewPoller(fetch FetchFunc, interval time.Duration, logger logging.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Poller{fetch: fetch, interval: interval, timeout: 10 * time.Second, now: time.Now, logger: logger}
}

func (p *Poller) Subscribe(ctx context.Context, conversationID models.ID, onUpdate func(Update)) func() {
	ctx, cancel := context.WithCancel(ctx)
	go p.run(ctx, conversationID, onUpdate)
	return cancel
}

func (p *Poller) run(ctx context.Context, id models.ID, onUpdate func(Update)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			onUpdate(Update{Kind: UpdateLoading})

			started := p.now()
			fctx, cancel := context.WithTimeout(ctx, p.timeout)
			msgs, err := p.fetch(fctx, id)
			cancel()

			if ctx.Err() != nil {
				return
			}
			if err != nil {
				p.logger.Debug(ctx, "poll failed", "conversation_id", id, "error", err)
				onUpdate(Update{Kind: UpdateError, Err: err, FetchedAt: started})
				continue
			}
			onUpdate(Update{Kind: UpdateSnapshot, Messages: msgs, FetchedAt: started})

		case <-ctx.Done():
			return
		}
	}
}
