package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phonelogin/internal/config"
	"phonelogin/internal/form"
)

type loadedMsg struct{ err error }

type submittedMsg struct {
	notice form.Notice
	err    error
}

type loggedOutMsg struct {
	notice form.Notice
	err    error
}

// Model is the bubbletea model for the login form.
type Model struct {
	ctx   context.Context
	form  *form.Controller
	title string

	input  textinput.Model
	notice form.Notice
	busy   bool
	loaded bool
	width  int
}

// New builds the form model. Nothing is read from storage until Init runs.
func New(ctx context.Context, ctrl *form.Controller, cfg config.FormConfig) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = ""
	ti.Width = 20
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	title := cfg.Title
	if title == "" {
		title = config.Default().Form.Title
	}
	return &Model{ctx: ctx, form: ctrl, title: title, input: ti}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, ctrl *form.Controller, cfg config.FormConfig) error {
	p := tea.NewProgram(New(ctx, ctrl, cfg), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init resolves the stored session.
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles input and storage results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case loadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.notice = form.Notice{Kind: form.NoticeError, Text: "Could not read saved session."}
		}
		return m, nil
	case submittedMsg:
		m.busy = false
		m.notice = msg.notice
		if msg.err == nil {
			m.input.SetValue("")
		}
		return m, nil
	case loggedOutMsg:
		m.busy = false
		m.notice = msg.notice
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if m.busy || !m.loaded {
			return m, nil
		}
		if m.LoggedIn() {
			m.notice = form.Notice{}
			m.busy = true
			return m, m.logoutCmd()
		}
		if !m.SubmitEnabled() {
			return m, nil
		}
		m.notice = form.Notice{}
		m.busy = true
		return m, m.submitCmd()
	}

	if m.LoggedIn() {
		return m, nil
	}
	m.notice = form.Notice{}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if formatted := m.form.OnInputChange(m.input.Value()); formatted != m.input.Value() {
		m.input.SetValue(formatted)
	}
	m.input.CursorEnd()
	return m, cmd
}

// LoggedIn reports whether the form is showing the welcome screen.
func (m *Model) LoggedIn() bool {
	_, ok := m.form.StoredValue()
	return ok
}

// SubmitEnabled reports whether the submit button is active. It stays
// disabled until the stored session has been read.
func (m *Model) SubmitEnabled() bool {
	return m.loaded && !m.busy && m.form.IsValid()
}

// Notice returns the message currently displayed, if any.
func (m *Model) Notice() form.Notice { return m.notice }

// View renders the form.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if m.LoggedIn() {
		b.WriteString(greetingStyle.Render(m.form.Greeting()))
		b.WriteString("\n\n")
		b.WriteString(buttonStyle.Render("Logout"))
		b.WriteString("\n")
		b.WriteString(m.renderNotice())
		b.WriteString(helpStyle.Render("enter: log out • esc: quit"))
		return b.String()
	}

	b.WriteString(borderFor(m.form.IsValid()).Render(m.input.View()))
	b.WriteString("\n")
	if m.SubmitEnabled() {
		b.WriteString(buttonStyle.Render("Submit"))
	} else {
		b.WriteString(disabledButtonStyle.Render("Submit"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	if !m.loaded {
		b.WriteString(helpStyle.Render("loading saved session…"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: submit • esc: quit"))
	return b.String()
}

func (m *Model) renderNotice() string {
	switch m.notice.Kind {
	case form.NoticeInfo:
		return "\n" + infoStyle.Render(m.notice.Text) + "\n"
	case form.NoticeError:
		return "\n" + errorStyle.Render(m.notice.Text) + "\n"
	}
	return ""
}

func (m *Model) loadCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.form
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Load(ctx)}
	}
}

func (m *Model) submitCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.form
	return func() tea.Msg {
		notice, err := ctrl.OnSubmit(ctx)
		return submittedMsg{notice: notice, err: err}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.form
	return func() tea.Msg {
		notice, err := ctrl.OnLogout(ctx)
		return loggedOutMsg{notice: notice, err: err}
	}
}

var _ tea.Model = (*Model)(nil)
