package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"futsal/internal/theme"
)

// HelpScreen displays the dashboard keyboard shortcuts
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpShortcutStyle.Width(16).Render(key) + theme.HelpLabelStyle.Render(description) + "\n"
}

func buildHelpContent(keys *KeyMap) string {
	var content strings.Builder
	content.WriteString(theme.SubtitleStyle.Render("Filters") + "\n")
	for _, b := range []key.Binding{keys.NextPeriod, keys.PrevPeriod, keys.NextPlace, keys.PrevPlace, keys.NextTag} {
		content.WriteString(renderShortcut(b.Help().Key, b.Help().Desc))
	}

	content.WriteString("\n" + theme.SubtitleStyle.Render("Trend chart") + "\n")
	for _, b := range []key.Binding{keys.ScrollLeft, keys.ScrollRight} {
		content.WriteString(renderShortcut(b.Help().Key, b.Help().Desc))
	}

	content.WriteString("\n" + theme.SubtitleStyle.Render("Application") + "\n")
	for _, b := range []key.Binding{keys.Reload, keys.Help, keys.Quit} {
		content.WriteString(renderShortcut(b.Help().Key, b.Help().Desc))
	}
	return content.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Resize sizes the viewport to the terminal
func (h *HelpScreen) Resize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = max(5, height-4)
	h.viewport.SetContent(h.content)
	h.initialized = true
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.Resize(msg.Width, msg.Height)
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Quit, h.keys.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return h.content
	}
	footer := theme.HelpStyle.Render("Press esc, q or ? to close")
	return h.viewport.View() + "\n" + footer
}
