package ui

// MenuItem is one node of the declarative menu tree: a label, an optional
// enablement predicate, and either a leaf action or a submenu.
type MenuItem struct {
	Label   string
	Enabled func() bool
	Run     func() error
	Items   []*MenuItem
}

// IsEnabled reports whether the item is selectable. Items without a
// predicate are always enabled.
func (m *MenuItem) IsEnabled() bool {
	return m.Enabled == nil || m.Enabled()
}

// IsSubmenu reports whether selecting the item opens a nested menu.
func (m *MenuItem) IsSubmenu() bool {
	return len(m.Items) > 0
}

// EnabledItems returns the currently selectable children.
func (m *MenuItem) EnabledItems() []*MenuItem {
	var enabled []*MenuItem
	for _, item := range m.Items {
		if item.IsEnabled() {
			enabled = append(enabled, item)
		}
	}
	return enabled
}
