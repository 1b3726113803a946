// Package panels connects a tab strip to the content it controls.
//
// A Switcher holds one PanelFunc per tab index. Attached to a strip it
// follows user-driven selection changes, records where the user came from,
// and can step back through that history.
//
// # Basic Usage
//
//	sw := panels.New()
//	sw.Register(0, func(input any) (any, error) {
//	    return renderInbox(input.(InboxInput)), nil
//	})
//	sw.Register(1, func(input any) (any, error) {
//	    return renderSent(), nil
//	})
//	sw.Attach(strip)
//
//	// After the strip commits a selection:
//	result, err := sw.Show(input)
//
//	// Back button:
//	if idx, ok := sw.Back(); ok {
//	    log.Printf("back to tab %d", idx)
//	}
//
// Back selects the previous tab programmatically, so it never fires the
// strip's change event and never records history of its own.
package panels
