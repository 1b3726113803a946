package tabstrip

// TabStripAction is how the user left the strip.
type TabStripAction int

const (
	TabStripActionConfirmed TabStripAction = iota // Enter or Start on the selected tab
	TabStripActionActivated                       // Activate callback asked to close
)

// TabStripResult is returned when the strip closes without cancellation.
type TabStripResult struct {
	Action   TabStripAction
	Selected int    // Index of the selected tab
	Label    string // Label of the selected tab
	Changes  int    // Number of change events fired while open
}
