package main

// ActionExecutor provides centralized action execution logic. Keyboard and
// mouse bindings both dispatch through here, so an action behaves the same
// no matter which input produced it. The mapping is a pure table: no row
// carries control flow of its own.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance.
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the ReaderActions interface.
// Returns false for unknown actions.
func (ae *ActionExecutor) ExecuteAction(action string, actions ReaderActions, state InputState) bool {
	switch action {
	case "exit":
		actions.Exit()
	case "help":
		actions.ToggleHelp()
	case "info":
		actions.ToggleInfo()
	case "next_page":
		actions.NextPage()
	case "prev_page":
		actions.PrevPage()
	case "first_page":
		actions.FirstPage()
	case "last_page":
		actions.LastPage()
	case "page_input":
		if !state.IsInPageInputMode() {
			actions.EnterPageInputMode()
		}
	case "page_left":
		actions.PageLeft()
	case "page_right":
		actions.PageRight()
	case "next_chapter":
		actions.OpenNextChapter()
	case "prev_chapter":
		actions.OpenPrevChapter()
	case "toggle_direction":
		actions.ToggleReadingDirection()
	case "cycle_nav_override":
		actions.CycleNavigationOverride()
	case "cycle_mode":
		actions.CycleReadingMode()
	case "toggle_ui":
		actions.ToggleUI()
	case "toggle_auto_hide":
		actions.ToggleAutoHide()
	case "bookmark":
		actions.ToggleBookmark()
	case "rotate_cw":
		actions.RotateCW()
	case "rotate_ccw":
		actions.RotateCCW()
	case "fullscreen":
		actions.ToggleFullscreen()
	case "zoom_in":
		actions.ZoomIn()
	case "zoom_out":
		actions.ZoomOut()
	case "zoom_reset":
		actions.ZoomReset()
	case "pan_up":
		actions.PanUp()
	case "pan_down":
		actions.PanDown()
	case "pan_left":
		actions.PanLeft()
	case "pan_right":
		actions.PanRight()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the shared instance used by both binding managers.
var globalActionExecutor = NewActionExecutor()
