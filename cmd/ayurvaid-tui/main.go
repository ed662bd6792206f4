package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ayurvaid/internal/api"
	"ayurvaid/internal/chat"
	"ayurvaid/internal/config"
	"ayurvaid/internal/history"
	"ayurvaid/internal/speech"
)

const (
	speechSendDelay  = 300 * time.Millisecond
	previewMaxChars  = 110
	statusLogLines   = 4
	userSpeakerLabel = "You"
	botSpeakerLabel  = "Ayurvaid"
)

type tabID int

const (
	tabChat tabID = iota
	tabHistory
	tabHelp
)

type model struct {
	cfg    config.Config
	client *api.Client

	session    *chat.Session
	recognizer *speech.Recognizer
	hasSpeech  bool
	listening  bool

	pendingLoad bool
	loadEpoch   int

	summaries   []history.Summary
	historyErr  string
	historySel  int
	historySeq  int
	historyBusy bool
	keyword     string
	searchFocus bool

	activeTab  tabID
	statusLine string
	logs       []string

	width  int
	height int

	input       textinput.Model
	search      textinput.Model
	timeline    viewport.Model
	historyPane viewport.Model
	spinner     spinner.Model

	theme uiTheme
}

type loadDoneMsg struct {
	epoch   int
	history api.ChatHistory
	err     error
}

type sendDoneMsg struct {
	epoch int
	reply string
	err   error
}

type nameDoneMsg struct {
	epoch int
	name  string
}

type historyDoneMsg struct {
	seq       int
	summaries []history.Summary
	err       error
}

type speechDoneMsg struct {
	transcript string
	err        error
}

type speechSendMsg struct{}

type uiTheme struct {
	header      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	panel       lipgloss.Style
	panelTitle  lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	errorStatus lipgloss.Style
	inputPanel  lipgloss.Style
	helpText    lipgloss.Style
	listPick    lipgloss.Style
	listName    lipgloss.Style
	listTime    lipgloss.Style
	speakerUser lipgloss.Style
	speakerBot  lipgloss.Style
	timestamp   lipgloss.Style
	listening   lipgloss.Style
	bold        lipgloss.Style
	italic      lipgloss.Style
}

func newTheme() uiTheme {
	leaf := lipgloss.Color("#2f9e44")
	mint := lipgloss.Color("#8ce99a")
	bark := lipgloss.Color("#1b2a1f")
	panelBg := lipgloss.Color("#22332a")
	text := lipgloss.Color("#f1f8f2")
	muted := lipgloss.Color("#9db8a4")
	amber := lipgloss.Color("#ffd166")
	rose := lipgloss.Color("#ff6b6b")

	return uiTheme{
		header: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(leaf).
			Padding(0, 1),
		tabActive: lipgloss.NewStyle().
			Background(leaf).
			Foreground(bark).
			Bold(true).
			Padding(0, 1),
		tabInactive: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(muted).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Background(bark).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(leaf).
			Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Foreground(mint).Bold(true),
		footer: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(muted).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mint).
			Padding(0, 1),
		status:      lipgloss.NewStyle().Foreground(mint).Bold(true),
		errorStatus: lipgloss.NewStyle().Foreground(rose).Bold(true),
		inputPanel: lipgloss.NewStyle().
			Background(panelBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mint).
			Padding(0, 1),
		helpText:    lipgloss.NewStyle().Foreground(muted),
		listPick:    lipgloss.NewStyle().Foreground(bark).Background(mint).Bold(true).Padding(0, 1),
		listName:    lipgloss.NewStyle().Foreground(text).Bold(true),
		listTime:    lipgloss.NewStyle().Foreground(muted),
		speakerUser: lipgloss.NewStyle().Foreground(amber).Bold(true),
		speakerBot:  lipgloss.NewStyle().Foreground(mint).Bold(true),
		timestamp:   lipgloss.NewStyle().Foreground(muted),
		listening:   lipgloss.NewStyle().Foreground(rose).Bold(true),
		bold:        lipgloss.NewStyle().Bold(true),
		italic:      lipgloss.NewStyle().Italic(true),
	}
}

func newModel(cfg config.Config) model {
	theme := newTheme()
	renderer := &chat.Renderer{
		Bold:   func(s string) string { return theme.bold.Render(s) },
		Italic: func(s string) string { return theme.italic.Render(s) },
	}

	session := chat.NewSession(cfg.ConversationID, renderer, time.Now())
	recognizer, hasSpeech := speech.Lookup(cfg.SpeechCommand, cfg.SpeechTimeout)

	input := textinput.New()
	input.Prompt = "❯ "
	input.CharLimit = 2000
	input.Placeholder = "Type your message..."
	input.Focus()

	search := textinput.New()
	search.Prompt = "🔍 "
	search.CharLimit = 200
	search.Placeholder = "Search conversations..."

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ce99a"))

	timeline := viewport.New(0, 0)
	timeline.MouseWheelEnabled = true
	historyPane := viewport.New(0, 0)
	historyPane.MouseWheelEnabled = true

	m := model{
		cfg:         cfg,
		client:      api.NewClient(cfg.APIBase, cfg.RequestTimeout),
		session:     session,
		recognizer:  recognizer,
		hasSpeech:   hasSpeech,
		activeTab:   tabChat,
		statusLine:  "starting...",
		logs:        []string{},
		input:       input,
		search:      search,
		timeline:    timeline,
		historyPane: historyPane,
		spinner:     sp,
		theme:       theme,
	}

	epoch, fetch := session.BeginLoad(cfg.Token, time.Now())
	m.loadEpoch = epoch
	m.pendingLoad = fetch
	if fetch {
		m.statusLine = "loading conversation..."
	} else {
		m.statusLine = "please log in to use the chatbot"
		m.appendLog("authentication required: no token configured")
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	if m.pendingLoad {
		cmds = append(cmds, m.fetchConversationCmd(m.loadEpoch))
	}
	return tea.Batch(cmds...)
}

func (m model) fetchConversationCmd(epoch int) tea.Cmd {
	client := m.client
	token := m.cfg.Token
	conversationID := m.session.ID
	return func() tea.Msg {
		loaded, err := client.Conversation(context.Background(), token, conversationID)
		return loadDoneMsg{epoch: epoch, history: loaded, err: err}
	}
}

func (m model) sendCmd(epoch int, text string) tea.Cmd {
	client := m.client
	token := m.cfg.Token
	conversationID := m.session.ID
	return func() tea.Msg {
		result, err := client.Predict(context.Background(), token, conversationID, text)
		return sendDoneMsg{epoch: epoch, reply: result.Response, err: err}
	}
}

func (m model) nameRefreshCmd(epoch int) tea.Cmd {
	client := m.client
	token := m.cfg.Token
	conversationID := m.session.ID
	return func() tea.Msg {
		loaded, err := client.Conversation(context.Background(), token, conversationID)
		if err != nil {
			// Name refresh is best-effort; the conversation keeps its
			// placeholder name until the next full load.
			return nameDoneMsg{epoch: epoch, name: ""}
		}
		return nameDoneMsg{epoch: epoch, name: loaded.ConversationName}
	}
}

func (m model) historyCmd(seq int, keyword string) tea.Cmd {
	client := m.client
	token := m.cfg.Token
	return func() tea.Msg {
		summaries, err := history.Search(context.Background(), client, token, keyword)
		return historyDoneMsg{seq: seq, summaries: summaries, err: err}
	}
}

func (m model) listenCmd() tea.Cmd {
	recognizer := m.recognizer
	return func() tea.Msg {
		transcript, err := recognizer.Start(context.Background())
		return speechDoneMsg{transcript: transcript, err: err}
	}
}

func speechRelayCmd() tea.Cmd {
	return tea.Tick(speechSendDelay, func(time.Time) tea.Msg {
		return speechSendMsg{}
	})
}

// startLoad begins (re)synchronizing the active conversation and returns the
// fetch command, or nil when unauthenticated.
func (m *model) startLoad() tea.Cmd {
	epoch, fetch := m.session.BeginLoad(m.cfg.Token, time.Now())
	m.renderTimeline()
	if !fetch {
		m.statusLine = "please log in to use the chatbot"
		return nil
	}
	m.statusLine = "loading conversation..."
	return m.fetchConversationCmd(epoch)
}

func (m *model) submit() tea.Cmd {
	text, epoch, ok := m.session.BeginSend(m.input.Value(), time.Now())
	if !ok {
		return nil
	}
	m.input.SetValue("")
	m.statusLine = "thinking..."
	m.renderTimeline()
	return m.sendCmd(epoch, text)
}

func (m *model) startListening() tea.Cmd {
	if m.session.Loading || m.listening {
		return nil
	}
	if !m.hasSpeech {
		m.statusLine = "speech input is not configured"
		return nil
	}
	m.listening = true
	m.statusLine = "listening..."
	return m.listenCmd()
}

func (m *model) refreshHistory(keyword string) tea.Cmd {
	m.keyword = keyword
	if strings.TrimSpace(m.cfg.Token) == "" {
		m.historyErr = "Please log in to view chat history"
		m.summaries = nil
		m.renderHistory()
		return nil
	}
	m.historySeq++
	m.historyBusy = true
	m.historyErr = ""
	m.renderHistory()
	return m.historyCmd(m.historySeq, keyword)
}

func (m *model) openSelected() tea.Cmd {
	if m.historySel < 0 || m.historySel >= len(m.summaries) {
		return nil
	}
	picked := m.summaries[m.historySel]
	m.activeTab = tabChat
	m.searchFocus = false
	m.search.Blur()
	m.input.Focus()
	if !m.session.SwitchTo(picked.ConversationID) {
		return nil
	}
	return m.startLoad()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case loadDoneMsg:
		if !m.session.ApplyLoad(msg.epoch, msg.history, msg.err, time.Now()) {
			break
		}
		if msg.err != nil {
			m.logError(msg.err)
			if errors.Is(msg.err, api.ErrUnauthenticated) || errors.Is(msg.err, api.ErrUnauthorized) {
				m.statusLine = "please log in to use the chatbot"
			} else {
				m.statusLine = "failed to load conversation"
			}
		} else {
			m.statusLine = fmt.Sprintf("ready · %s", m.session.Name)
		}
		m.renderTimeline()
	case sendDoneMsg:
		refreshName, applied := m.session.ApplySend(msg.epoch, msg.reply, msg.err, time.Now())
		if !applied {
			break
		}
		if msg.err != nil {
			m.logError(msg.err)
			m.statusLine = "failed to get response"
		} else {
			m.statusLine = fmt.Sprintf("ready · %s", m.session.Name)
		}
		if refreshName {
			cmds = append(cmds, m.nameRefreshCmd(m.session.Epoch()))
		}
		m.renderTimeline()
	case nameDoneMsg:
		if strings.TrimSpace(msg.name) == "" {
			break
		}
		if m.session.ApplyName(msg.epoch, msg.name) {
			m.statusLine = fmt.Sprintf("ready · %s", m.session.Name)
		}
	case historyDoneMsg:
		if msg.seq != m.historySeq {
			break
		}
		m.historyBusy = false
		if msg.err != nil {
			m.logError(msg.err)
			m.historyErr = "Failed to load chat history"
			m.summaries = nil
		} else {
			m.historyErr = ""
			m.summaries = msg.summaries
			if m.historySel >= len(m.summaries) {
				m.historySel = maxInt(0, len(m.summaries)-1)
			}
		}
		m.renderHistory()
	case speechDoneMsg:
		m.listening = false
		if msg.err != nil {
			if errors.Is(msg.err, speech.ErrNoSpeech) {
				m.statusLine = "no speech detected"
			} else if !errors.Is(msg.err, speech.ErrListening) {
				m.logError(msg.err)
				m.statusLine = "speech recognition failed"
			}
			break
		}
		m.input.SetValue(msg.transcript)
		m.statusLine = "heard you..."
		cmds = append(cmds, speechRelayCmd())
	case speechSendMsg:
		if cmd := m.submit(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.renderTimeline()
		m.renderHistory()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case tea.MouseMsg:
		switch m.activeTab {
		case tabChat:
			var cmd tea.Cmd
			m.timeline, cmd = m.timeline.Update(msg)
			cmds = append(cmds, cmd)
		case tabHistory:
			var cmd tea.Cmd
			m.historyPane, cmd = m.historyPane.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % 3
		if m.activeTab == tabHistory {
			m.input.Blur()
			return m.refreshHistory(m.keyword)
		}
		if m.activeTab == tabChat {
			m.searchFocus = false
			m.search.Blur()
			m.input.Focus()
		}
		return nil
	}

	switch m.activeTab {
	case tabChat:
		return m.handleChatKey(msg)
	case tabHistory:
		return m.handleHistoryKey(msg)
	}
	return nil
}

func (m *model) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "ctrl+s":
		return m.startListening()
	case "ctrl+n":
		m.session.StartNew(time.Now())
		return m.startLoad()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.timeline, cmd = m.timeline.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

func (m *model) handleHistoryKey(msg tea.KeyMsg) tea.Cmd {
	if m.searchFocus {
		switch msg.String() {
		case "enter":
			m.searchFocus = false
			m.search.Blur()
			return m.refreshHistory(m.search.Value())
		case "esc":
			m.searchFocus = false
			m.search.Blur()
			return nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return cmd
		}
	}

	switch msg.String() {
	case "/":
		m.searchFocus = true
		m.search.Focus()
		return textinput.Blink
	case "up", "k":
		if m.historySel > 0 {
			m.historySel--
			m.renderHistory()
		}
	case "down", "j":
		if m.historySel < len(m.summaries)-1 {
			m.historySel++
			m.renderHistory()
		}
	case "enter":
		return m.openSelected()
	case "r":
		return m.refreshHistory(m.keyword)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.historyPane, cmd = m.historyPane.Update(msg)
		return cmd
	}
	return nil
}

func (m model) View() string {
	if m.width == 0 {
		return "starting ayurvaid..."
	}
	sections := []string{m.renderHeader(), m.renderContent()}
	if m.activeTab == tabChat {
		sections = append(sections, m.renderInput())
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m *model) renderHeader() string {
	tabs := []string{"Chat", "History", "Help"}
	rendered := make([]string, 0, len(tabs))
	for i, label := range tabs {
		style := m.theme.tabInactive
		if tabID(i) == m.activeTab {
			style = m.theme.tabActive
		}
		rendered = append(rendered, style.Render(label))
	}
	title := m.theme.panelTitle.Render("🌿 " + m.session.Name)
	line := lipgloss.JoinHorizontal(lipgloss.Center, rendered...) + "  " + title
	return m.theme.header.Width(maxInt(0, m.width-2)).Render(line)
}

func (m *model) renderContent() string {
	switch m.activeTab {
	case tabHistory:
		return m.theme.panel.Width(maxInt(0, m.width-2)).Render(m.historyPane.View())
	case tabHelp:
		return m.theme.panel.Width(maxInt(0, m.width-2)).Render(m.renderHelp())
	default:
		return m.theme.panel.Width(maxInt(0, m.width-2)).Render(m.timeline.View())
	}
}

func (m *model) renderInput() string {
	indicator := ""
	if m.listening {
		indicator = " " + m.theme.listening.Render("● listening")
	} else if m.session.Loading {
		indicator = " " + m.spinner.View()
	}
	return m.theme.inputPanel.Width(maxInt(0, m.width-2)).Render(m.input.View() + indicator)
}

func (m *model) renderFooter() string {
	style := m.theme.status
	if strings.Contains(m.statusLine, "failed") || strings.Contains(m.statusLine, "log in") {
		style = m.theme.errorStatus
	}
	lines := []string{style.Render(m.statusLine) + "  " + m.theme.helpText.Render(m.keyHints())}
	for _, entry := range tailLines(m.logs, statusLogLines) {
		lines = append(lines, m.theme.helpText.Render(entry))
	}
	return m.theme.footer.Width(maxInt(0, m.width-2)).Render(strings.Join(lines, "\n"))
}

func (m *model) keyHints() string {
	switch m.activeTab {
	case tabHistory:
		return "↑/↓ select · enter open · / search · r refresh · tab next · ctrl+c quit"
	case tabHelp:
		return "tab next · ctrl+c quit"
	default:
		hints := "enter send · ctrl+n new chat · tab history · ctrl+c quit"
		if m.hasSpeech {
			hints = "enter send · ctrl+s speak · ctrl+n new chat · tab history · ctrl+c quit"
		}
		return hints
	}
}

func (m *model) renderHelp() string {
	lines := []string{
		m.theme.panelTitle.Render("Ayurvaid terminal client"),
		"",
		"Chat tab",
		"  enter        send the typed message",
		"  ctrl+s       capture one spoken utterance (when configured)",
		"  ctrl+n       start a new conversation",
		"",
		"History tab",
		"  /            focus the search field (enter runs the search)",
		"  enter        open the selected conversation",
		"  r            reload the list",
		"",
		"Configuration comes from flags, AYURVAID_* environment variables,",
		"and an optional .env file. The bearer token is read from",
		"AYURVAID_TOKEN or the token file (~/.ayurvaid/token).",
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderTimeline() {
	width := maxInt(20, m.timeline.Width-2)
	blocks := make([]string, 0, len(m.session.Messages))
	for _, message := range m.session.Messages {
		speaker := m.theme.speakerBot.Render(botSpeakerLabel)
		if message.Sender == chat.SenderUser {
			speaker = m.theme.speakerUser.Render(userSpeakerLabel)
		}
		header := speaker + " " + m.theme.timestamp.Render(shortTime(message.Timestamp))
		blocks = append(blocks, header+"\n"+wrapText(message.Text, width))
	}
	if m.session.Loading {
		blocks = append(blocks, m.theme.speakerBot.Render(botSpeakerLabel)+" "+m.spinner.View())
	}
	m.timeline.SetContent(strings.Join(blocks, "\n\n"))
	m.timeline.GotoBottom()
}

func (m *model) renderHistory() {
	width := maxInt(20, m.historyPane.Width-2)
	var lines []string
	searchView := m.search.View()
	if m.searchFocus {
		searchView = m.theme.panelTitle.Render("search") + " " + searchView
	}
	lines = append(lines, searchView, "")

	switch {
	case m.historyErr != "":
		lines = append(lines, m.theme.errorStatus.Render(m.historyErr))
	case m.historyBusy:
		lines = append(lines, m.spinner.View()+" loading chat history...")
	case len(m.summaries) == 0 && strings.TrimSpace(m.keyword) != "":
		lines = append(lines, "No conversations match your search.")
	case len(m.summaries) == 0:
		lines = append(lines, "No conversations yet. Start a new chat to see your history!")
	default:
		for i, summary := range m.summaries {
			marker := "  "
			name := m.theme.listName.Render(summary.Name)
			if i == m.historySel {
				marker = m.theme.listPick.Render("▶")
				name = m.theme.listPick.Render(summary.Name)
			}
			lines = append(lines, fmt.Sprintf("%s %s  %s", marker, name, m.theme.listTime.Render(longTime(summary.Timestamp))))
			firstUser, latestBot := history.Preview(summary)
			if firstUser != "" {
				lines = append(lines, "    "+m.theme.speakerUser.Render(userSpeakerLabel+":")+" "+compactSingleLine(firstUser, minInt(previewMaxChars, width)))
			}
			if latestBot != "" {
				lines = append(lines, "    "+m.theme.speakerBot.Render(botSpeakerLabel+":")+" "+compactSingleLine(latestBot, minInt(previewMaxChars, width)))
			}
			lines = append(lines, "")
		}
	}
	m.historyPane.SetContent(strings.Join(lines, "\n"))
}

func (m *model) resize() {
	contentHeight := maxInt(4, m.height-7)
	contentWidth := maxInt(20, m.width-6)
	m.timeline.Width = contentWidth
	m.timeline.Height = contentHeight
	m.historyPane.Width = contentWidth
	m.historyPane.Height = contentHeight
	m.input.Width = maxInt(10, m.width-12)
	m.search.Width = maxInt(10, m.width-16)
}

func (m *model) appendLog(line string) {
	m.logs = append(m.logs, time.Now().Format("15:04:05")+" "+line)
	if len(m.logs) > 50 {
		m.logs = m.logs[len(m.logs)-50:]
	}
}

func (m *model) logError(err error) {
	if err == nil {
		return
	}
	m.appendLog("error: " + compactSingleLine(err.Error(), 160))
}

func shortTime(timestamp string) string {
	parsed, err := history.ParseTimestamp(timestamp)
	if err != nil {
		return "--:--"
	}
	return parsed.Local().Format("15:04")
}

func longTime(timestamp string) string {
	parsed, err := history.ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}
	return parsed.Local().Format("Jan 2 2006, 15:04")
}

func tailLines(lines []string, limit int) []string {
	if limit <= 0 || len(lines) <= limit {
		return lines
	}
	return lines[len(lines)-limit:]
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current)+1+lipgloss.Width(word) <= width {
				current += " " + word
				continue
			}
			wrapped = append(wrapped, current)
			current = word
		}
		wrapped = append(wrapped, current)
	}
	return strings.Join(wrapped, "\n")
}

func truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}
	if limit <= 3 {
		return text[:limit]
	}
	return text[:limit-3] + "..."
}

func compactSingleLine(text string, limit int) string {
	compact := strings.Join(strings.Fields(text), " ")
	return truncate(compact, limit)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func main() {
	cfg, err := config.Load(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(newModel(cfg), opts...).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ayurvaid-tui:", err)
		os.Exit(1)
	}
}
