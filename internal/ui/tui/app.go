package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dv222bk/3-1-recept-pa-fil/internal/domain"
	"github.com/dv222bk/3-1-recept-pa-fil/internal/ports"
)

type screen int

const (
	screenHome screen = iota
	screenRecipes
	screenDetail
)

type recipeItem struct {
	recipe domain.Recipe
	index  int
}

func (r recipeItem) Title() string { return r.recipe.Name }
func (r recipeItem) Description() string {
	return fmt.Sprintf("%d ingredienser, %d steg", len(r.recipe.Ingredients), len(r.recipe.Instructions))
}
func (r recipeItem) FilterValue() string { return r.recipe.Name }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	recipes list.Model
	detail  domain.Recipe
	toast   string

	workspaceFound bool
	workspaceRoot  string

	store    ports.RecipeStore
	changeCh chan struct{}
	subID    int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Recept"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		scr:     screenHome,
		recipes: l,
	}
}

func (m model) Init() tea.Cmd {
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.recipes.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.err != nil && !msg.found {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		return m, cmdOpenBook(msg.root, m.deps.Logger)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.toast = "Workspace created"
		return m, cmdOpenBook(msg.root, m.deps.Logger)

	case bookOpenedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.store = msg.store
		m.setRecipes(msg.recipes)
		m.scr = screenRecipes

		// A buffered channel bridges the store's synchronous notification to
		// the bubbletea loop; coalescing repeated signals is fine because the
		// handler re-snapshots the whole collection.
		m.changeCh = make(chan struct{}, 1)
		ch := m.changeCh
		m.subID = msg.store.Subscribe(func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
		return m, listenChanges(m.changeCh)

	case storeChangedMsg:
		return m, tea.Batch(cmdSnapshotRecipes(m.store), listenChanges(m.changeCh))

	case recipesReloadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.setRecipes(msg.recipes)
		return m, nil

	case recipeDeletedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("%q borttaget (osparat)", msg.name)
		if m.scr == screenDetail {
			m.scr = screenRecipes
		}
		return m, nil

	case bookSavedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Sparat"
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.scr == screenRecipes {
		var cmd tea.Cmd
		m.recipes, cmd = m.recipes.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.scr == screenDetail {
			m.scr = screenRecipes
			return m, nil
		}
		if m.recipes.FilterState() != list.Filtering {
			return m, tea.Quit
		}

	case "enter":
		if m.scr == screenRecipes && m.recipes.FilterState() != list.Filtering {
			it, ok := m.recipes.SelectedItem().(recipeItem)
			if !ok {
				return m, nil
			}
			m.detail = it.recipe
			m.scr = screenDetail
			return m, nil
		}

	case "i":
		if m.scr == screenHome && !m.workspaceFound {
			return m, cmdInitWorkspaceHere(m.deps, mustGetwd())
		}

	case "d":
		if m.scr == screenRecipes && m.store != nil && m.recipes.FilterState() != list.Filtering {
			it, ok := m.recipes.SelectedItem().(recipeItem)
			if !ok {
				return m, nil
			}
			return m, cmdDeleteRecipe(m.store, it.index)
		}

	case "s":
		if m.scr == screenRecipes && m.store != nil && m.recipes.FilterState() != list.Filtering {
			return m, cmdSaveBook(m.store, m.deps.Logger)
		}

	case "r":
		if m.scr == screenRecipes && m.store != nil && m.recipes.FilterState() != list.Filtering {
			return m, cmdReloadFromDisk(m.store)
		}

	case "esc", "b":
		if m.scr == screenDetail {
			m.scr = screenRecipes
			return m, nil
		}
	}

	if m.scr == screenRecipes {
		var cmd tea.Cmd
		m.recipes, cmd = m.recipes.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) setRecipes(recipes []domain.Recipe) {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = recipeItem{recipe: r, index: i}
	}
	m.recipes.SetItems(items)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Recept") + "\n" +
		m.theme.Subtitle.Render("Receptbok på fil — bläddra, ta bort och spara") + "\n"

	var banner string
	if m.workspaceFound {
		status := ""
		if m.store != nil && m.store.Modified() {
			status = "  (osparade ändringar)"
		}
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s%s", m.workspaceRoot, status))
	} else {
		banner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nPress i to create one here.",
		)
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Help.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("i init workspace • q quit")
		return wrap.Render(header + "\n" + banner + toast + "\n\n" + help)

	case screenRecipes:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • d delete • s save • r reload • / search • q quit")
		return wrap.Render(header + "\n" + banner + toast + "\n\n" + m.theme.Card.Render(m.recipes.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(renderRecipe(m.detail))
		help := m.theme.Help.Render("esc/b back")
		return wrap.Render(header + "\n" + banner + toast + "\n\n" + card + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
