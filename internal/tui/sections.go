package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"secview/internal/dataset"
)

type sectionItem struct {
	id, name string
	color    string
	polygons int
}

func (s sectionItem) Title() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.color)).Render("■") + " " + s.name
}
func (s sectionItem) Description() string { return fmt.Sprintf("%s  %d polygons", s.id, s.polygons) }
func (s sectionItem) FilterValue() string { return s.name }

// sectionItems lists the sections in dataset order.
func sectionItems(ds *dataset.Dataset) []list.Item {
	var items []list.Item
	for _, s := range ds.Sections() {
		name := s.SectionName
		if name == "" {
			name = s.SectionID
		}
		items = append(items, sectionItem{
			id:       s.SectionID,
			name:     name,
			color:    ds.Color(s.SectionID),
			polygons: len(s.Polygons),
		})
	}
	return items
}

// showSection renders section i of the dataset in the 2D view. The zoom
// resets; the selection and the detail panel are kept.
func (m *Model) showSection(i int) {
	if m.ds == nil || m.plot == nil {
		return
	}
	secs := m.ds.Sections()
	if i < 0 || i >= len(secs) {
		return
	}
	s := &secs[i]
	m.current = i
	m.plot.Render(s.SectionID, s.Polygons, m.plotSize())
	m.hoverHasData = false
	name := s.SectionName
	if name == "" {
		name = s.SectionID
	}
	m.status = fmt.Sprintf("section %s  polygons=%d", name, len(m.plot.Shapes()))
}

// syncSection follows the list cursor.
func (m *Model) syncSection() {
	if m.ds == nil {
		return
	}
	it, ok := m.sections.SelectedItem().(sectionItem)
	if !ok {
		return
	}
	if i := m.ds.Index(it.id); i >= 0 && i != m.current {
		m.showSection(i)
	}
}

// currentSection returns the section shown in the 2D view.
func (m Model) currentSection() (dataset.Section, bool) {
	if m.ds == nil || m.current < 0 || m.current >= len(m.ds.Sections()) {
		return dataset.Section{}, false
	}
	return m.ds.Sections()[m.current], true
}
