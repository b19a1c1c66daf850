package main

// ActionDefinition defines an action with its default keybindings, mouse
// bindings, and description. The table is the single place an action is
// declared: adding a row is all it takes to expose a new operation to
// keyboard, mouse, and the help overlay.
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default bindings.
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Quit application"},
	{"help", []string{"Shift+Slash"}, []string{"Alt+RightClick"}, "Show/hide help"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide info display"},

	// Logical page navigation (follows reading order)
	{"next_page", []string{"Space", "KeyN"}, []string{"WheelDown"}, "Next page"},
	{"prev_page", []string{"Backspace", "KeyP"}, []string{"WheelUp"}, "Previous page"},
	{"first_page", []string{"Home", "Shift+Comma"}, []string{}, "Jump to first page"},
	{"last_page", []string{"End", "Shift+Period"}, []string{}, "Jump to last page"},
	{"page_input", []string{"KeyG"}, []string{"Ctrl+LeftClick"}, "Go to page (enter page number)"},

	// Physical navigation (screen left/right, direction-resolved)
	{"page_left", []string{"ArrowLeft"}, []string{}, "Page toward screen left"},
	{"page_right", []string{"ArrowRight"}, []string{}, "Page toward screen right"},

	// Series navigation
	{"next_chapter", []string{"PageDown", "KeyD"}, []string{}, "Open next comic in series"},
	{"prev_chapter", []string{"PageUp", "KeyA"}, []string{}, "Open previous comic in series"},

	// Reading settings
	{"toggle_direction", []string{"Shift+KeyB"}, []string{"Ctrl+MiddleClick"}, "Toggle reading direction (LTR / RTL)"},
	{"cycle_nav_override", []string{"Shift+KeyV"}, []string{}, "Cycle navigation override (auto/physical/logical)"},
	{"cycle_mode", []string{"KeyM"}, []string{"MiddleClick"}, "Cycle reading mode"},

	// Chrome
	{"toggle_ui", []string{"KeyT"}, []string{}, "Show/hide reader chrome"},
	{"toggle_auto_hide", []string{"Shift+KeyT"}, []string{}, "Toggle chrome auto-hide"},

	// Page operations
	{"bookmark", []string{"KeyB"}, []string{}, "Toggle bookmark on current page"},
	{"rotate_cw", []string{"KeyR"}, []string{}, "Rotate page clockwise"},
	{"rotate_ccw", []string{"KeyL"}, []string{}, "Rotate page counterclockwise"},

	{"fullscreen", []string{"Enter"}, []string{"DoubleLeftClick"}, "Toggle fullscreen"},

	// Zoom and pan
	{"zoom_in", []string{"Equal", "Shift+Equal"}, []string{"Ctrl+WheelUp"}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, []string{"Ctrl+WheelDown"}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, []string{"Shift+MiddleClick"}, "Reset to 100% zoom"},
	{"pan_up", []string{"ArrowUp"}, []string{}, "Pan up"},
	{"pan_down", []string{"ArrowDown"}, []string{}, "Pan down"},
	{"pan_left", []string{"Shift+ArrowLeft"}, []string{}, "Pan left"},
	{"pan_right", []string{"Shift+ArrowRight"}, []string{}, "Pan right"},
}

// GetActionDescriptions returns a map of action names to their descriptions.
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings.
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings.
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
