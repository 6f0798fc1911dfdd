package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sungkangmobil/showroom-assistant/pkg/assistant"
	"github.com/sungkangmobil/showroom-assistant/pkg/chats"
	"github.com/sungkangmobil/showroom-assistant/pkg/providers/gemini"
)

// appState represents the application state machine.
type appState int

const (
	stateIdle appState = iota
	stateProcessing
)

// responseMsg carries one finished assistant turn back into the UI loop.
type responseMsg struct {
	text     string
	duration time.Duration
}

// quickActions maps function keys to the canned questions from the chat
// widget's shortcut buttons.
var quickActions = map[string]string{
	"f1": "Apa saja daftar mobil yang tersedia?",
	"f2": "Apa promo terbaru bulan ini?",
	"f3": "Berapa jam operasional showroom?",
	"f4": "Bagaimana cara menghubungi showroom?",
}

// appModel is the root bubbletea model.
type appModel struct {
	ctx     context.Context
	asst    *assistant.Assistant
	adapter *gemini.Adapter

	history  chats.History
	viewport viewport.Model
	input    textarea.Model
	spin     spinner.Model

	state        appState
	ready        bool
	width        int
	height       int
	lastDuration time.Duration
}

func newAppModel(ctx context.Context, asst *assistant.Assistant, adapter *gemini.Adapter) appModel {
	ta := textarea.New()
	ta.Placeholder = "Tanya tentang mobil, harga, promo, dll..."
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.CharLimit = 0
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	greeting := fmt.Sprintf(
		"Halo! Selamat datang di %s. Saya siap membantu Anda mencari mobil impian. Ada yang bisa saya bantu?",
		asst.Catalog().Name,
	)

	return appModel{
		ctx:     ctx,
		asst:    asst,
		adapter: adapter,
		history: chats.History{chats.NewTurn(chats.Assistant, greeting)},
		input:   ta,
		spin:    sp,
		state:   stateIdle,
	}
}

func (m appModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != stateProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case responseMsg:
		m.history = append(m.history, chats.NewTurn(chats.Assistant, msg.text))
		m.lastDuration = msg.duration
		m.state = stateIdle
		m.input.Focus()
		m.refreshViewport()
		return m, textarea.Blink
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentWidth := msg.Width - 4
	initMarkdownRenderer(contentWidth)

	m.input.SetWidth(msg.Width - 4)

	// Header and status take one line each; the bordered input takes three.
	vpHeight := msg.Height - 5
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}

	m.refreshViewport()
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if m.state != stateIdle {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		return m.submit(text)

	case "f1", "f2", "f3", "f4":
		if m.state != stateIdle {
			return m, nil
		}
		return m.submit(quickActions[msg.String()])

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts one assistant turn. The history passed to Respond excludes
// the new user message; the assistant appends it to the prompt itself.
func (m appModel) submit(text string) (tea.Model, tea.Cmd) {
	prior := append(chats.History(nil), m.history...)

	m.history = append(m.history, chats.NewTurn(chats.User, text))
	m.state = stateProcessing
	m.input.Reset()
	m.input.Blur()
	m.refreshViewport()

	ctx := m.ctx
	asst := m.asst
	respond := func() tea.Msg {
		start := time.Now()
		resp := asst.Respond(ctx, text, prior)
		return responseMsg{text: resp, duration: time.Since(start)}
	}

	return m, tea.Batch(m.spin.Tick, respond)
}

// refreshViewport re-renders the transcript into the viewport and scrolls
// to the bottom.
func (m *appModel) refreshViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m appModel) renderTranscript() string {
	width := m.viewport.Width - 2
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	for i, turn := range m.history {
		if i > 0 {
			b.WriteString("\n")
		}

		if turn.Role == chats.User {
			b.WriteString(userBlockStyle.Width(width).Render(
				userPrefixStyle.Render("Anda") + "\n" + turn.Text,
			))
		} else {
			b.WriteString(botBlockStyle.Width(width).Render(
				botPrefixStyle.Render("Sungkang Bot") + "\n" + renderMarkdown(turn.Text),
			))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m appModel) View() string {
	if !m.ready {
		return "memuat..."
	}

	header := headerStyle.Width(m.width).Render(
		fmt.Sprintf("%s  %s", m.asst.Catalog().Name, onlineStyle.Render("● Online")),
	)

	inputBox := inputDisabledBorder.Render(m.input.View())
	if m.state == stateIdle {
		inputBox = inputFocusedBorder.Render(m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.statusLine(),
		inputBox,
	)
}

// statusLine shows either the processing spinner or usage stats plus the
// key hints.
func (m appModel) statusLine() string {
	if m.state == stateProcessing {
		return statusStyle.Render(m.spin.View() + " Generating...")
	}

	total := m.adapter.Usage.Total()
	status := fmt.Sprintf(
		"token: %d  •  f1 daftar mobil  f2 promo  f3 jam buka  f4 kontak  •  esc keluar",
		total.Total(),
	)
	if m.lastDuration > 0 {
		status = formatDuration(m.lastDuration) + "  •  " + status
	}

	return statusStyle.Render(status)
}
