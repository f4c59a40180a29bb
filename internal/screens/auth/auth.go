// Package auth asks who is drilling before the menu is shown.
package auth

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/countdrill/internal/profile"
	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	"github.com/abhisek/countdrill/internal/ui/components"
	"github.com/abhisek/countdrill/internal/ui/layout"
	"github.com/abhisek/countdrill/internal/ui/theme"
)

const nameLimit = 32

// Focus targets, in Tab order.
const (
	focusFirst = iota
	focusLast
	focusSignIn
	focusGuest
	focusCount
)

// AuthScreen collects the learner's first and last name, or signs in as
// a guest.
type AuthScreen struct {
	env    *screen.Env
	next   func() screen.Screen
	first  components.TextInput
	last   components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates an AuthScreen. After signing in, the stack is reset to the
// screen produced by next.
func New(env *screen.Env, next func() screen.Screen) *AuthScreen {
	last := components.NewTextInput("Last name", nameLimit)
	last.Blur()
	return &AuthScreen{
		env:   env,
		next:  next,
		first: components.NewTextInput("First name", nameLimit),
		last:  last,
	}
}

func (a *AuthScreen) Init() tea.Cmd {
	return a.first.Init()
}

func (a *AuthScreen) Title() string {
	return "Sign in"
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % focusCount)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + focusCount - 1) % focusCount)
		case "enter":
			return a.confirm()
		}
	}

	var cmd tea.Cmd
	switch a.focus {
	case focusFirst:
		a.first, cmd = a.first.Update(msg)
	case focusLast:
		a.last, cmd = a.last.Update(msg)
	}
	return a, cmd
}

func (a *AuthScreen) setFocus(f int) tea.Cmd {
	a.focus = f
	a.first.Blur()
	a.last.Blur()
	switch f {
	case focusFirst:
		return a.first.Focus()
	case focusLast:
		return a.last.Focus()
	}
	return nil
}

func (a *AuthScreen) confirm() (screen.Screen, tea.Cmd) {
	switch a.focus {
	case focusGuest:
		return a, a.signIn(profile.Guest())
	case focusFirst:
		if a.last.Blank() {
			return a, a.setFocus(focusLast)
		}
	}

	p, err := profile.New(a.first.Value(), a.last.Value())
	if err != nil {
		a.errMsg = "Enter both your first and last name, or continue as guest."
		return a, nil
	}
	return a, a.signIn(p)
}

// signIn stores p and resets the stack to the next screen. A failed save
// still signs in for this run.
func (a *AuthScreen) signIn(p profile.Profile) tea.Cmd {
	a.errMsg = ""
	a.env.Profile = p
	if err := profile.Save(a.env.Ctx, a.env.KV, p); err != nil {
		a.env.Warnf("save profile: %v", err)
	}
	next := a.next()
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: next}
	}
}

func (a *AuthScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Who is drilling today?"))
	b.WriteString("\n\n")

	b.WriteString(field("First name", a.first, a.focus == focusFirst))
	b.WriteString("\n")
	b.WriteString(field("Last name ", a.last, a.focus == focusLast))
	b.WriteString("\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.ArcadeButton("Start", a.focus == focusSignIn, 16),
		"  ",
		components.ArcadeButton("Continue as guest", a.focus == focusGuest, 24),
	)
	b.WriteString(buttons)

	if a.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg))
	}

	card := components.ArcadeCard(b.String(), cw)
	return components.CabinetFrame(card, width, height)
}

func field(label string, in components.TextInput, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = theme.Selected
	}
	return style.Render(label+": ") + in.View()
}
