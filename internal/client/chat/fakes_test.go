package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

var baseTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: baseTime} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeTransport struct {
	mu          sync.Mutex
	convs       []models.Conversation
	convErr     error
	messages    map[models.ID][]models.Message
	messagesErr error
	sendErr     error
	sendID      models.ID
	// sendGate, when set, blocks Send until a value is received.
	sendGate chan struct{}
	sent     []string
}

func (f *fakeTransport) Conversations(context.Context) ([]models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.convs, f.convErr
}

func (f *fakeTransport) Messages(_ context.Context, id models.ID) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.messagesErr != nil {
		return nil, f.messagesErr
	}
	return f.messages[id], nil
}

func (f *fakeTransport) Send(_ context.Context, _ models.Conversation, text string) (models.ID, error) {
	if f.sendGate != nil {
		<-f.sendGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return f.sendID, f.sendErr
}

func (f *fakeTransport) SampleConversations() []models.Conversation {
	return []models.Conversation{{ID: "s1", CounterpartyID: "s1", CounterpartyName: "Sample"}}
}

func (f *fakeTransport) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// fakeSubscriber records subscriptions so tests can push updates by hand.
type fakeSubscriber struct {
	mu     sync.Mutex
	subs   map[models.ID]func(Update)
	closed map[models.ID]int
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{subs: map[models.ID]func(Update){}, closed: map[models.ID]int{}}
}

func (f *fakeSubscriber) Subscribe(_ context.Context, id models.ID, onUpdate func(Update)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[id] = onUpdate
	return func() {
		f.mu.Lock()
		f.closed[id]++
		f.mu.Unlock()
	}
}

func (f *fakeSubscriber) push(id models.ID, u Update) {
	f.mu.Lock()
	fn := f.subs[id]
	f.mu.Unlock()
	if fn == nil {
		panic(fmt.Sprintf("no subscription for %s", id))
	}
	fn(u)
}

func (f *fakeSubscriber) closedCount(id models.ID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed[id]
}

func msg(id models.ID, sender, text string, at time.Time) models.Message {
	return models.Message{ID: id, SenderID: sender, Text: text, Timestamp: at}
}

func texts(msgs []models.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}
