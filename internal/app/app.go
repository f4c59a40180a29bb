// Package app hosts the Bubble Tea program: it owns the screen stack and
// draws the frame around the active screen.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/countdrill/internal/audio"
	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/profile"
	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	"github.com/abhisek/countdrill/internal/screens/auth"
	"github.com/abhisek/countdrill/internal/screens/home"
	sessionscreen "github.com/abhisek/countdrill/internal/screens/session"
	"github.com/abhisek/countdrill/internal/screens/welcome"
	"github.com/abhisek/countdrill/internal/store"
	"github.com/abhisek/countdrill/internal/taskgen"
	"github.com/abhisek/countdrill/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	KV        store.KV
	Ledger    *history.Ledger
	Generator taskgen.Generator
	Cues      audio.Player

	// Kind and Tier, when both set, skip the menu and start drilling.
	Kind taskgen.Kind
	Tier taskgen.Tier

	// SkipSplash goes straight to the first real screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int

	// start is pushed over the initial screen on Init.
	start screen.Screen
}

// newAppModel creates an AppModel showing initial.
func newAppModel(env *screen.Env, initial screen.Screen) AppModel {
	return AppModel{
		env:    env,
		router: router.New(initial),
	}
}

// newEnv builds the shared screen environment and loads the stored profile.
func newEnv(ctx context.Context, opts Options) *screen.Env {
	env := &screen.Env{
		Ctx:       ctx,
		KV:        opts.KV,
		Ledger:    opts.Ledger,
		Generator: opts.Generator,
		Cues:      opts.Cues,
	}
	if env.Cues == nil {
		env.Cues = audio.Silent{}
	}
	if p, ok := profile.Load(ctx, opts.KV, os.Stderr); ok {
		env.Profile = p
	}
	return env
}

// firstScreen picks sign-in or the menu, optionally behind the splash.
func firstScreen(env *screen.Env, opts Options) screen.Screen {
	menu := func() screen.Screen { return home.New(env) }
	next := menu
	if !env.SignedIn() {
		next = func() screen.Screen { return auth.New(env, menu) }
	}
	if opts.SkipSplash {
		return next()
	}
	return welcome.New(next)
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.start == nil {
		return cmd
	}
	start := m.start
	return tea.Batch(cmd, func() tea.Msg {
		return router.PushScreenMsg{Screen: start}
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	streak := 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StreakProvider); ok {
			streak = sp.Streak()
		}
	}

	header := layout.RenderHeader(title, m.env.Profile.DisplayName(), streak, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
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
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	env := newEnv(ctx, opts)

	var model AppModel
	if opts.Kind != "" && opts.Tier != "" {
		if !env.SignedIn() {
			env.Profile = profile.Guest()
		}
		model = newAppModel(env, home.New(env))
		model.start = sessionscreen.New(env, opts.Kind, opts.Tier)
	} else {
		model = newAppModel(env, firstScreen(env, opts))
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()

	for _, w := range env.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
