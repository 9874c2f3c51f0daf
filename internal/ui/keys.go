package ui

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"futsal/internal/domain"
)

// KeyDefinition defines the default keys and help text of a dashboard action
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// defaultKeys maps each domain action onto its keys
var defaultKeys = map[string][]string{
	"help":         {"?"},
	"next_period":  {"tab", "p"},
	"next_place":   {"v"},
	"next_tag":     {"t"},
	"prev_period":  {"shift+tab", "P"},
	"prev_place":   {"V"},
	"quit":         {"q", "ctrl+c"},
	"reload":       {"r"},
	"scroll_left":  {"left", "h"},
	"scroll_right": {"right", "l"},
}

var (
	keyDefinitions     []KeyDefinition
	keyDefinitionsMap  map[string]KeyDefinition
	keyDefinitionsOnce sync.Once
)

// AllKeyDefinitions returns one definition per domain action, sorted by name
func AllKeyDefinitions() []KeyDefinition {
	keyDefinitionsOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(domain.Actions))
		for _, a := range domain.Actions {
			def := KeyDefinition{Defaults: defaultKeys[a.Name], Help: strings.ToLower(a.Description), Name: a.Name}
			keyDefinitions = append(keyDefinitions, def)
			keyDefinitionsMap[a.Name] = def
		}
		sort.Slice(keyDefinitions, func(i, j int) bool { return keyDefinitions[i].Name < keyDefinitions[j].Name })
	})
	return keyDefinitions
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	AllKeyDefinitions()
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// KeyMap contains the dashboard key bindings
type KeyMap struct {
	Help        key.Binding
	NextPeriod  key.Binding
	NextPlace   key.Binding
	NextTag     key.Binding
	PrevPeriod  key.Binding
	PrevPlace   key.Binding
	Quit        key.Binding
	Reload      key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
}

// NewKeyMap creates the dashboard bindings from the action registry
func NewKeyMap() KeyMap {
	return KeyMap{
		Help:        buildBinding("help"),
		NextPeriod:  buildBinding("next_period"),
		NextPlace:   buildBinding("next_place"),
		NextTag:     buildBinding("next_tag"),
		PrevPeriod:  buildBinding("prev_period"),
		PrevPlace:   buildBinding("prev_place"),
		Quit:        buildBinding("quit"),
		Reload:      buildBinding("reload"),
		ScrollLeft:  buildBinding("scroll_left"),
		ScrollRight: buildBinding("scroll_right"),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPeriod, k.NextPlace, k.NextTag, k.Reload, k.Help, k.Quit}
}

// All returns every binding in help-screen order
func (k KeyMap) All() []key.Binding {
	return []key.Binding{
		k.NextPeriod, k.PrevPeriod, k.NextPlace, k.PrevPlace, k.NextTag,
		k.ScrollLeft, k.ScrollRight, k.Reload, k.Help, k.Quit,
	}
}

func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}
	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}
