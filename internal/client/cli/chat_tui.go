package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/lawlink/internal/client/chat"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

const (
	sidebarWidth   = 32
	clockTickEvery = 30 * time.Second
)

var (
	sidebarStyle  = lipgloss.NewStyle().Width(sidebarWidth).Border(lipgloss.NormalBorder(), false, true, false, false).PaddingRight(1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	unreadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#dc3545")).Padding(0, 1)
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))
	theirsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545"))
	chatHelpStyle = mutedStyle
)

type (
	changedMsg struct{}
	clockMsg   time.Time
	sentMsg    struct{ err error }
	openedMsg  struct{ err error }
)

// chatModel is the bubbletea model of the chat screen. All state lives in
// the view-model; the model keeps a rendered copy and the input widgets.
type chatModel struct {
	ctx     context.Context
	vm      *chat.ViewModel
	changes <-chan struct{}
	now     func() time.Time

	view     chat.View
	cursor   int
	input    textinput.Model
	viewport viewport.Model
	notice   string
	width    int
	height   int
}

func newChatModel(ctx context.Context, vm *chat.ViewModel, changes <-chan struct{}, now func() time.Time) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 2000
	ti.Focus()

	m := chatModel{
		ctx:      ctx,
		vm:       vm,
		changes:  changes,
		now:      now,
		input:    ti,
		viewport: viewport.Model{Width: 60, Height: 15},
		width:    100,
		height:   20,
	}
	m.refresh()
	return m
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(clockTickEvery, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes), clockTick())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.refresh()
		return m, waitForChange(m.changes)

	case clockMsg:
		m.renderMessages()
		return m, clockTick()

	case openedMsg:
		m.notice = ""
		if msg.err != nil {
			m.notice = "Could not open conversation: " + msg.err.Error()
		}
		m.refresh()
		return m, nil

	case sentMsg:
		if msg.err != nil {
			m.notice = "Failed to send message. Please try again."
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.renderMessages()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.view.Selected == nil {
			return m.updateList(msg)
		}
		return m.updateConversation(msg)
	}
	return m, nil
}

func (m chatModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Conversations)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.view.Conversations) {
			return m, m.selectCmd(m.view.Conversations[m.cursor].ID)
		}
	}
	return m, nil
}

func (m chatModel) updateConversation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.vm.ClearSelection()
		m.notice = ""
		m.refresh()
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		m.notice = ""
		return m, m.sendCmd(text)
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.vm.SetCompose(m.input.Value())
	return m, cmd
}

func (m chatModel) selectCmd(id models.ID) tea.Cmd {
	vm, ctx := m.vm, m.ctx
	return func() tea.Msg {
		return openedMsg{err: vm.Select(ctx, id)}
	}
}

func (m chatModel) sendCmd(text string) tea.Cmd {
	vm, ctx := m.vm, m.ctx
	return func() tea.Msg {
		return sentMsg{err: vm.Send(ctx, text)}
	}
}

// refresh copies the view-model state into the model.
func (m *chatModel) refresh() {
	m.view = m.vm.Snapshot()
	if m.input.Value() != m.view.Compose {
		m.input.SetValue(m.view.Compose)
		m.input.CursorEnd()
	}
	if m.cursor >= len(m.view.Conversations) {
		m.cursor = max(0, len(m.view.Conversations)-1)
	}
	if m.view.Selected != nil {
		for i, c := range m.view.Conversations {
			if c.ID == m.view.Selected.ID {
				m.cursor = i
			}
		}
	}
	m.renderMessages()
}

func (m *chatModel) layout() {
	m.viewport.Width = max(20, m.width-sidebarWidth-4)
	m.viewport.Height = max(5, m.height-5)
}

func (m *chatModel) renderMessages() {
	var b strings.Builder
	now := m.now()
	for _, msg := range m.view.Messages {
		who, style := msg.SenderName, theirsStyle
		if msg.Mine() {
			who, style = "You", mineStyle
		}
		if who == "" && m.view.Selected != nil {
			who = m.view.Selected.CounterpartyName
		}
		stamp := chat.FormatRelative(msg.Timestamp, now)
		if msg.Status == models.MessagePending {
			stamp = "sending..."
		}
		fmt.Fprintf(&b, "%s %s\n%s\n\n", style.Bold(true).Render(who), mutedStyle.Render(stamp), style.Render(msg.Text))
	}
	m.viewport.SetContent(b.String())
	if m.vm.ConsumeScroll() {
		m.viewport.GotoBottom()
	}
}

func (m chatModel) View() string {
	var side strings.Builder
	side.WriteString(titleStyle.Render("Conversations") + "\n\n")
	if len(m.view.Conversations) == 0 {
		side.WriteString(mutedStyle.Render("No conversations yet"))
	}
	for i, c := range m.view.Conversations {
		line := c.CounterpartyName
		if c.UnreadCount > 0 {
			line += " " + unreadStyle.Render(fmt.Sprint(c.UnreadCount))
		}
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		side.WriteString(line + "\n")
		if c.LastMessagePreview != "" {
			side.WriteString("  " + mutedStyle.Render(truncate(c.LastMessagePreview, sidebarWidth-4)) + "\n")
		}
	}

	var body strings.Builder
	if m.view.Selected == nil {
		body.WriteString(mutedStyle.Render("Select a conversation to start chatting"))
		body.WriteString("\n\n" + chatHelpStyle.Render("↑/↓ move · enter open · q quit"))
	} else {
		header := titleStyle.Render(m.view.Selected.CounterpartyName)
		if m.view.Status == chat.StatusLoading && len(m.view.Messages) == 0 {
			header += " " + mutedStyle.Render("loading...")
		}
		body.WriteString(header + "\n")
		body.WriteString(m.viewport.View() + "\n")
		if m.notice != "" {
			body.WriteString(errorStyle.Render(m.notice) + "\n")
		}
		body.WriteString(m.input.View() + "\n")
		body.WriteString(chatHelpStyle.Render("enter send · pgup/pgdn scroll · esc back · ctrl+c quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(side.String()), " ", body.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// runChatProgram runs the chat screen until the user quits.
func (a *App) runChatProgram(ctx context.Context, vm *chat.ViewModel, selected models.ID) error {
	changes := make(chan struct{}, 1)
	vm.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer vm.OnChange(nil)

	vm.LoadConversations(ctx)
	if selected != "" {
		if err := vm.Select(ctx, selected); err != nil {
			return err
		}
	}

	p := tea.NewProgram(newChatModel(ctx, vm, changes, a.now), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
