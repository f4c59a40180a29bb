package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/countdrill/internal/profile"
	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	"github.com/abhisek/countdrill/internal/screens/auth"
	"github.com/abhisek/countdrill/internal/screens/history"
	sessionscreen "github.com/abhisek/countdrill/internal/screens/session"
	"github.com/abhisek/countdrill/internal/screens/summary"
	"github.com/abhisek/countdrill/internal/taskgen"
	"github.com/abhisek/countdrill/internal/ui/components"
	"github.com/abhisek/countdrill/internal/ui/layout"
)

// HomeScreen is the main menu: pick a task kind, then a tier.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu

	// Tier picker, shown after a kind is chosen.
	picking  bool
	kind     taskgen.Kind
	tierMenu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.BackHandler = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}

	var items []components.MenuItem
	for _, k := range taskgen.Kinds {
		k := k
		items = append(items, components.MenuItem{Label: strings.ToUpper(k.Label()), Action: func() tea.Cmd {
			h.openTierPicker(k)
			return nil
		}})
	}
	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(env)}
			}
		}},
		components.MenuItem{Label: "SWITCH USER", Action: h.switchUser},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

// openTierPicker swaps the kind list for the tier list of k.
func (h *HomeScreen) openTierPicker(k taskgen.Kind) {
	h.picking = true
	h.kind = k

	var items []components.MenuItem
	for _, tier := range taskgen.Tiers {
		tier := tier
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(tier.Label()),
			Hint:  taskgen.Hint(k, tier),
			Action: func() tea.Cmd {
				h.picking = false
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: sessionscreen.New(h.env, k, tier)}
				}
			},
		})
	}
	h.tierMenu = components.NewMenu(items)
}

// switchUser signs the learner out and returns to the sign-in screen.
func (h *HomeScreen) switchUser() tea.Cmd {
	env := h.env
	if err := profile.Clear(env.Ctx, env.KV); err != nil {
		env.Warnf("%v", err)
	}
	env.Profile = profile.Profile{}
	env.LastSession = nil
	env.LastUser = ""
	next := auth.New(env, func() screen.Screen { return New(env) })
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) HandlesBack() bool {
	return true
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		h.picking = false
		return h, nil
	}

	var cmd tea.Cmd
	if h.picking {
		h.tierMenu, cmd = h.tierMenu.Update(msg)
		return h, cmd
	}
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.env.Profile.DisplayName(), cw))

	if h.env.LastSession != nil && !compact {
		sections = append(sections, summary.RenderPanel(*h.env.LastSession, h.env.LastUser, cw))
	}

	if h.picking {
		sections = append(sections, renderSubtitle(h.kind.Label()+": choose a tier", cw))
		sections = append(sections, h.tierMenu.View(cw))
	} else {
		sections = append(sections, h.menu.View(cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Menu"
}
