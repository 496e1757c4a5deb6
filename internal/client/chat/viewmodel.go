package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/samples"
	"github.com/dmitrijs2005/lawlink/internal/logging"
	"github.com/google/uuid"
)

var ErrUnknownConversation = errors.New("unknown conversation")

// Status is the load state of the selected conversation.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "idle"
	}
}

// View is a copy of the view-model state for rendering.
type View struct {
	Conversations []models.Conversation
	Selected      *models.Conversation
	Messages      []models.Message
	Status        Status
	Compose       string
	// Err is the last refresh error; the log shown is the last good one.
	Err error
}

type localMessage struct {
	msg         models.Message
	confirmedAt time.Time
}

type ViewModel struct {
	transport Transport
	sub       Subscriber
	logger    logging.Logger
	now       func() time.Time
	newID     func() string

	mu            sync.Mutex
	conversations []models.Conversation
	selected      *models.Conversation
	server        []models.Message
	local         []localMessage
	status        Status
	compose       string
	lastErr       error
	scroll        bool
	epoch         uint64
	unsubscribe   func()
	onChange      func()
}

type Option func(*ViewModel)

func WithLogger(l logging.Logger) Option {
	return func(vm *ViewModel) { vm.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(vm *ViewModel) { vm.now = now }
}

func WithIDGenerator(fn func() string) Option {
	return func(vm *ViewModel) { vm.newID = fn }
}

func NewViewModel(t Transport, sub Subscriber, opts ...Option) *ViewModel {
	vm := &ViewModel{
		transport: t,
		sub:       sub,
		logger:    logging.Nop(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, o := range opts {
		o(vm)
	}
	return vm
}

// OnChange registers fn to be called after every state change. fn runs
// without the view-model lock held and may call Snapshot.
func (vm *ViewModel) OnChange(fn func()) {
	vm.mu.Lock()
	vm.onChange = fn
	vm.mu.Unlock()
}

func (vm *ViewModel) notify() {
	vm.mu.Lock()
	fn := vm.onChange
	vm.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// LoadConversations fetches the conversation list, falling back to sample
// conversations when the backend is unreachable.
func (vm *ViewModel) LoadConversations(ctx context.Context) []models.Conversation {
	list := client.FetchWithFallback(ctx, vm.logger, "conversations", vm.transport.Conversations, vm.transport.SampleConversations())

	vm.mu.Lock()
	if vm.selected != nil {
		for i := range list {
			if list[i].ID == vm.selected.ID {
				list[i].UnreadCount = 0
			}
		}
	}
	vm.conversations = list
	out := slices.Clone(list)
	vm.mu.Unlock()

	vm.notify()
	return out
}

// Select makes id the active conversation: it fetches the log at once and
// starts a subscription bounded by ctx. Any previous subscription is
// cancelled.
func (vm *ViewModel) Select(ctx context.Context, id models.ID) error {
	vm.mu.Lock()
	idx := slices.IndexFunc(vm.conversations, func(c models.Conversation) bool { return c.ID == id })
	if idx < 0 {
		vm.mu.Unlock()
		return fmt.Errorf("select %s: %w", id, ErrUnknownConversation)
	}

	vm.stopLocked()
	vm.conversations[idx].UnreadCount = 0
	conv := vm.conversations[idx]
	vm.selected = &conv
	vm.status = StatusLoading
	vm.scroll = true
	epoch := vm.epoch
	vm.mu.Unlock()
	vm.notify()

	started := vm.now()
	msgs, err := vm.transport.Messages(ctx, id)

	vm.mu.Lock()
	if vm.epoch != epoch {
		vm.mu.Unlock()
		return nil
	}
	if err != nil {
		vm.logger.Warn(ctx, "failed to load messages", "conversation_id", id, "error", err)
		vm.lastErr = err
		if len(vm.server) == 0 {
			vm.server = samples.Messages(conv, vm.now())
		}
		vm.status = StatusReady
	} else {
		vm.applySnapshotLocked(msgs, started)
	}
	vm.mu.Unlock()
	vm.notify()

	unsub := vm.sub.Subscribe(ctx, id, func(u Update) { vm.apply(epoch, u) })

	vm.mu.Lock()
	if vm.epoch != epoch {
		vm.mu.Unlock()
		unsub()
		return nil
	}
	vm.unsubscribe = unsub
	vm.mu.Unlock()
	return nil
}

// ClearSelection stops the subscription and returns to the conversation
// list.
func (vm *ViewModel) ClearSelection() {
	vm.mu.Lock()
	vm.stopLocked()
	vm.mu.Unlock()
	vm.notify()
}

// Close releases the subscription. The view-model may be reused.
func (vm *ViewModel) Close() {
	vm.ClearSelection()
}

// stopLocked invalidates the current selection; late updates carrying the
// old epoch are dropped.
func (vm *ViewModel) stopLocked() {
	vm.epoch++
	if vm.unsubscribe != nil {
		vm.unsubscribe()
		vm.unsubscribe = nil
	}
	vm.selected = nil
	vm.server = nil
	vm.local = nil
	vm.status = StatusIdle
	vm.lastErr = nil
}

func (vm *ViewModel) apply(epoch uint64, u Update) {
	vm.mu.Lock()
	if vm.epoch != epoch || vm.selected == nil {
		vm.mu.Unlock()
		return
	}
	switch u.Kind {
	case UpdateLoading:
		vm.status = StatusLoading
	case UpdateSnapshot:
		vm.applySnapshotLocked(u.Messages, u.FetchedAt)
	case UpdateIncremental:
		vm.applyIncrementalLocked(u.Messages)
	case UpdateError:
		vm.lastErr = u.Err
		vm.status = StatusReady
	}
	vm.mu.Unlock()
	vm.notify()
}

func (vm *ViewModel) applySnapshotLocked(msgs []models.Message, fetchedAt time.Time) {
	before := len(vm.server)
	vm.server = sortedConfirmed(msgs)

	vm.local = slices.DeleteFunc(vm.local, func(l localMessage) bool {
		if l.msg.Status != models.MessageConfirmed {
			return false
		}
		if l.msg.ID != "" && containsID(vm.server, l.msg.ID) {
			return true
		}
		return !fetchedAt.Before(l.confirmedAt)
	})

	if len(vm.server) > before {
		vm.scroll = true
	}
	vm.status = StatusReady
	vm.lastErr = nil
}

func (vm *ViewModel) applyIncrementalLocked(msgs []models.Message) {
	added := false
	for _, m := range sortedConfirmed(msgs) {
		if m.ID != "" && containsID(vm.server, m.ID) {
			continue
		}
		vm.server = append(vm.server, m)
		added = true

		vm.local = slices.DeleteFunc(vm.local, func(l localMessage) bool {
			if l.msg.Status != models.MessageConfirmed {
				return false
			}
			if l.msg.ID != "" {
				return l.msg.ID == m.ID
			}
			return m.Mine() && m.Text == l.msg.Text
		})
	}
	if added {
		slices.SortStableFunc(vm.server, models.ByTimestamp)
		vm.scroll = true
	}
	vm.status = StatusReady
	vm.lastErr = nil
}

// SetCompose replaces the compose field.
func (vm *ViewModel) SetCompose(text string) {
	vm.mu.Lock()
	vm.compose = text
	vm.mu.Unlock()
}

func (vm *ViewModel) Compose() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.compose
}

// Send posts text to the selected conversation. The message is shown as
// pending immediately; on failure it is removed again, the compose field
// gets the text back and the error is returned. Blank text or no selection
// is a no-op.
func (vm *ViewModel) Send(ctx context.Context, text string) error {
	vm.mu.Lock()
	if strings.TrimSpace(text) == "" || vm.selected == nil {
		vm.mu.Unlock()
		return nil
	}
	msg := models.Message{
		SenderID:  models.CurrentUserMarker,
		Text:      text,
		Timestamp: vm.now(),
		ClientID:  vm.newID(),
		Status:    models.MessagePending,
	}
	vm.local = append(vm.local, localMessage{msg: msg})
	vm.compose = ""
	vm.scroll = true
	conv := *vm.selected
	epoch := vm.epoch
	vm.mu.Unlock()
	vm.notify()

	serverID, err := vm.transport.Send(ctx, conv, text)

	vm.mu.Lock()
	idx := slices.IndexFunc(vm.local, func(l localMessage) bool { return l.msg.ClientID == msg.ClientID })
	if err != nil {
		if idx >= 0 {
			vm.local = slices.Delete(vm.local, idx, idx+1)
		}
		if vm.epoch == epoch {
			vm.compose = text
		}
		vm.mu.Unlock()
		vm.logger.Warn(ctx, "message rolled back", "conversation_id", conv.ID, "client_id", msg.ClientID, "status", models.MessageRolledBack, "error", err)
		vm.notify()
		return fmt.Errorf("send message: %w", err)
	}
	if idx >= 0 {
		vm.local[idx].msg.Status = models.MessageConfirmed
		vm.local[idx].msg.ID = serverID
		vm.local[idx].confirmedAt = vm.now()
	}
	for i := range vm.conversations {
		if vm.conversations[i].ID == conv.ID {
			vm.conversations[i].LastMessagePreview = text
		}
	}
	vm.mu.Unlock()
	vm.notify()
	return nil
}

// Snapshot returns a copy of the current state. Messages is the server log
// merged with local messages, ordered by timestamp.
func (vm *ViewModel) Snapshot() View {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	v := View{
		Conversations: slices.Clone(vm.conversations),
		Status:        vm.status,
		Compose:       vm.compose,
		Err:           vm.lastErr,
	}
	if vm.selected != nil {
		sel := *vm.selected
		v.Selected = &sel
	}
	v.Messages = make([]models.Message, 0, len(vm.server)+len(vm.local))
	v.Messages = append(v.Messages, vm.server...)
	for _, l := range vm.local {
		v.Messages = append(v.Messages, l.msg)
	}
	slices.SortStableFunc(v.Messages, models.ByTimestamp)
	return v
}

// ConsumeScroll reports whether the view should scroll to the latest
// message, and resets the flag.
func (vm *ViewModel) ConsumeScroll() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	s := vm.scroll
	vm.scroll = false
	return s
}

func sortedConfirmed(msgs []models.Message) []models.Message {
	out := slices.Clone(msgs)
	for i := range out {
		out[i].Status = models.MessageConfirmed
	}
	slices.SortStableFunc(out, models.ByTimestamp)
	return out
}

func containsID(msgs []models.Message, id models.ID) bool {
	return slices.ContainsFunc(msgs, func(m models.Message) bool { return m.ID == id })
}
