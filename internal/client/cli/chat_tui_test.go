package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/lawlink/internal/client/chat"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tuiNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

type tuiTransport struct {
	sendErr error
}

func (tuiTransport) Conversations(context.Context) ([]models.Conversation, error) {
	return []models.Conversation{
		{ID: "1", CounterpartyID: "1", CounterpartyName: "Jane Doe", UnreadCount: 2},
		{ID: "2", CounterpartyID: "2", CounterpartyName: "Bob Smith", LastMessagePreview: "Thanks"},
	}, nil
}

func (tuiTransport) Messages(_ context.Context, id models.ID) ([]models.Message, error) {
	return []models.Message{{ID: "m1", SenderID: id.String(), Text: "Hello from " + id.String(), Timestamp: tuiNow.Add(-5 * time.Minute)}}, nil
}

func (t tuiTransport) Send(context.Context, models.Conversation, string) (models.ID, error) {
	return "", t.sendErr
}

func (tuiTransport) SampleConversations() []models.Conversation { return nil }

type idleSubscriber struct{}

func (idleSubscriber) Subscribe(context.Context, models.ID, func(chat.Update)) func() { return func() {} }

func newTestChatModel(t *testing.T, tr tuiTransport) chatModel {
	t.Helper()
	vm := chat.NewViewModel(tr, idleSubscriber{}, chat.WithClock(func() time.Time { return tuiNow }))
	t.Cleanup(vm.Close)
	vm.LoadConversations(context.Background())
	return newChatModel(context.Background(), vm, make(chan struct{}), func() time.Time { return tuiNow })
}

func press(m chatModel, msg tea.Msg) (chatModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(chatModel), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestChatModel_ListAndSelect(t *testing.T) {
	m := newTestChatModel(t, tuiTransport{})

	view := m.View()
	assert.Contains(t, view, "Jane Doe")
	assert.Contains(t, view, "Bob Smith")
	assert.Contains(t, view, "Select a conversation")

	m, _ = press(m, key("down"))
	assert.Equal(t, 1, m.cursor)

	m, cmd := press(m, key("enter"))
	require.NotNil(t, cmd)
	cmd()

	m, _ = press(m, changedMsg{})
	require.NotNil(t, m.view.Selected)
	assert.Equal(t, models.ID("2"), m.view.Selected.ID)
	assert.Contains(t, m.View(), "Hello from 2")
	assert.Contains(t, m.View(), "5m ago")

	m, _ = press(m, key("esc"))
	assert.Nil(t, m.view.Selected)
}

func TestChatModel_SelectFailureShowsNotice(t *testing.T) {
	m := newTestChatModel(t, tuiTransport{})
	m, _ = press(m, changedMsg{})

	// the rendered list is stale: "3" was never loaded into the view-model
	m.view.Conversations = append(m.view.Conversations, models.Conversation{ID: "3", CounterpartyName: "Gone"})
	m.cursor = 2

	m, cmd := press(m, key("enter"))
	require.NotNil(t, cmd)
	m, _ = press(m, cmd())

	assert.Contains(t, m.notice, "Could not open conversation")
	assert.Contains(t, m.notice, chat.ErrUnknownConversation.Error())
	assert.Nil(t, m.view.Selected)

	m.cursor = 0
	m, cmd = press(m, key("enter"))
	m, _ = press(m, cmd())
	assert.Empty(t, m.notice)
	require.NotNil(t, m.view.Selected)
}

func TestChatModel_TypingAndSend(t *testing.T) {
	m := newTestChatModel(t, tuiTransport{})
	require.NoError(t, m.vm.Select(context.Background(), "1"))
	m, _ = press(m, changedMsg{})

	m, _ = press(m, key("hi"))
	assert.Equal(t, "hi", m.vm.Compose())

	m, cmd := press(m, key("enter"))
	require.NotNil(t, cmd)
	m, _ = press(m, cmd())

	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.notice)
	assert.Contains(t, m.View(), "hi")
}

func TestChatModel_FailedSendRestoresInput(t *testing.T) {
	m := newTestChatModel(t, tuiTransport{sendErr: errors.New("offline")})
	require.NoError(t, m.vm.Select(context.Background(), "1"))
	m, _ = press(m, changedMsg{})

	m, _ = press(m, key("are you there?"))
	m, cmd := press(m, key("enter"))
	m, _ = press(m, cmd())

	assert.Equal(t, "are you there?", m.input.Value())
	assert.Equal(t, "Failed to send message. Please try again.", m.notice)
	assert.Len(t, m.view.Messages, 1)
}

func TestChatModel_QuitKeys(t *testing.T) {
	m := newTestChatModel(t, tuiTransport{})
	_, cmd := press(m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
