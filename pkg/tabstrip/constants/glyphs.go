package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
const (
	LeftRight = "\U000F0E73" // Horizontal arrow indicator
	UpDown    = "\U000F0E79" // Vertical arrow indicator
	Space     = "\U000F1050" // Keyboard space bar
	Enter     = "\U000F0311" // Keyboard return
	Escape    = "\U000F12B7" // Keyboard escape
)
