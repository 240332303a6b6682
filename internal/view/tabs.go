package view

// TabLink is a tab button; Target names the panel it opens.
type TabLink struct {
	Target string
	Active bool
}

// Tabs is the fixed set of tabcontent panels and their tablinks buttons.
type Tabs struct {
	panels []*Element
	links  []*TabLink
}

// NewTabs creates one panel and one link per name. The first panel is open.
func NewTabs(names ...string) *Tabs {
	t := &Tabs{}
	for _, name := range names {
		t.panels = append(t.panels, &Element{ID: name, Hidden: true})
		t.links = append(t.links, &TabLink{Target: name})
	}
	if len(names) > 0 {
		t.Open(names[0])
	}
	return t
}

// Open hides every panel, clears every active marker, then shows target
// and marks its link. It reports false, changing nothing, when target is
// not one of the panels.
func (t *Tabs) Open(target string) bool {
	panel := t.Panel(target)
	if panel == nil {
		return false
	}

	for _, p := range t.panels {
		p.Hide()
	}
	for _, l := range t.links {
		l.Active = false
	}

	panel.Show()
	for _, l := range t.links {
		if l.Target == target {
			l.Active = true
		}
	}
	return true
}

// Panel returns the panel with the given name or nil.
func (t *Tabs) Panel(name string) *Element {
	for _, p := range t.panels {
		if p.ID == name {
			return p
		}
	}
	return nil
}

// Current returns the name of the visible panel.
func (t *Tabs) Current() string {
	for _, p := range t.panels {
		if !p.Hidden {
			return p.ID
		}
	}
	return ""
}

// Names lists the panels in display order.
func (t *Tabs) Names() []string {
	names := make([]string, 0, len(t.panels))
	for _, p := range t.panels {
		names = append(names, p.ID)
	}
	return names
}

// Links returns the tab buttons in display order.
func (t *Tabs) Links() []*TabLink {
	return t.links
}

// Next returns the panel after the current one, wrapping around.
func (t *Tabs) Next() string {
	names := t.Names()
	current := t.Current()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return current
}
