package console

import "slices"

// Clipboard holds the content ids copied from a result table.
type Clipboard struct {
	ids []string
}

// Set replaces the clipboard contents.
func (c *Clipboard) Set(ids []string) {
	c.ids = slices.Clone(ids)
}

// Get returns the clipboard contents. It never returns nil.
func (c *Clipboard) Get() []string {
	if c.ids == nil {
		return []string{}
	}
	return slices.Clone(c.ids)
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.ids = nil
}

// IsEmpty reports whether the clipboard holds no ids.
func (c *Clipboard) IsEmpty() bool {
	return len(c.ids) == 0
}
