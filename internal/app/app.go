package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screen"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screens/home"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/layout"
)

// Options carries the wired dependencies into the root model.
type Options struct {
	Session      *catalog.Session
	Speaker      speech.Speaker
	PracticeRepo store.PracticeRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *catalog.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Session, opts.Speaker, opts.PracticeRepo)
	return AppModel{
		router:  router.New(homeScreen),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own esc (search cancel, session end); only the kill
		// switch lives here.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(
		title,
		m.session.Progress.FavoriteCount(),
		m.session.Progress.DoneCount(),
		m.width,
	)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			footerHints = append(hints, footerHints[0])
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
