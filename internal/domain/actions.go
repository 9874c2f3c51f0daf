package domain

// Action represents a user-invocable action in the dashboard.
type Action struct {
	Description string
	Name        string
}

// Actions is the canonical registry of all dashboard actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "help", Description: "Show keyboard shortcuts"},
	{Name: "next_period", Description: "Cycle period filter forward (all, years, months)"},
	{Name: "next_place", Description: "Cycle venue filter forward"},
	{Name: "next_tag", Description: "Cycle highlight video tag filter"},
	{Name: "prev_period", Description: "Cycle period filter backward"},
	{Name: "prev_place", Description: "Cycle venue filter backward"},
	{Name: "quit", Description: "Exit the dashboard"},
	{Name: "reload", Description: "Reload records from the store"},
	{Name: "scroll_left", Description: "Scroll the trend chart left"},
	{Name: "scroll_right", Description: "Scroll the trend chart right"},
}

// GetActionByName returns the action with the given name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}
