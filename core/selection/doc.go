// Package selection tracks row selection over an externally paginated result
// set whose rows are identified by string keys.
//
// Only the rows of the current page are known to the model. The selection
// itself survives page navigation: moving to another page replaces the
// materialized rows and the page offset but keeps every selected key.
//
// # Clicks
//
// Click follows the usual list conventions:
//   - A plain click selects exactly the clicked key.
//   - Ctrl toggles the clicked key and keeps the rest of the selection.
//   - Shift selects the contiguous range between the active row and the
//     clicked row, replacing the selection unless Ctrl is held as well.
//
// A shift range can only be computed when both ends lie on the current page.
// Otherwise the click degrades to selecting the clicked key, the returned
// ClickResult reports Local == false, and the optional RangeFunc is asked to
// resolve the range from its own source (for example a server side query).
//
// # Row groups
//
// A single key may render into several rows of a page. Such rows form a group
// and are always selected or deselected together; Rows returns every page
// index belonging to a key.
//
// # Usage
//
//	m := selection.New()
//	m.SetPage(0, []string{"1.1", "2.1", "3.1"})
//	m.SelectAllOnPage()
//	m.Click("2.1", 1, selection.Modifiers{Ctrl: true})
//	m.SelectedKeys() // ["1.1", "3.1"]
package selection
