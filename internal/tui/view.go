package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"secview/internal/geom"
)

const (
	headerHeight = 1
	footerHeight = 2
	sidebarWidth = 30
)

type rect struct{ X, Y, W, H int }

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// micro maps a terminal cell to the centre of its 2x4 braille block in
// canvas micro-pixels.
func (r rect) micro(x, y int) geom.Vec2 {
	return geom.Vec2{float64((x-r.X)*2 + 1), float64((y-r.Y)*4 + 2)}
}

// layout is shared by View and the mouse handler so both agree on where the
// canvases are.
type layout struct {
	width   int
	sidebar rect
	listH   int
	detailH int
	plot    rect // 2D canvas, below its title row
	scene   rect // 3D canvas, below its title row
}

func (m Model) layout() layout {
	contentW := max(40, m.width)
	contentH := max(6, m.height-headerHeight-footerHeight)
	sw := min(sidebarWidth, contentW/4)
	l := layout{width: contentW}
	l.sidebar = rect{0, headerHeight, sw, contentH}
	l.listH = contentH / 2
	l.detailH = contentH - l.listH
	panes := contentW - sw - 1
	pw := max(4, (panes-1)/2)
	canvasH := max(2, contentH-1)
	l.plot = rect{sw + 1, headerHeight + 1, pw, canvasH}
	l.scene = rect{l.plot.X + pw + 1, headerHeight + 1, max(4, panes-1-pw), canvasH}
	return l
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	header := titleStyle.Render(" secview ─ sectioned polygon viewer ")
	if sec, ok := m.currentSection(); ok {
		header += dimStyle.Render("  " + sec.SectionName)
	}
	header = lipgloss.NewStyle().Width(l.width).Render(header)

	// Body
	var body string
	switch {
	case m.err != nil:
		box := errorBoxStyle.Render("could not load dataset from " + m.source + "\n\n" + m.err.Error())
		body = lipgloss.Place(l.width, l.sidebar.H, lipgloss.Center, lipgloss.Center, box)
	case m.loading:
		body = lipgloss.Place(l.width, l.sidebar.H, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("loading "+m.source+" ..."))
	default:
		plot := m.viewPane("2D "+m.plotTitle(), focusPlot, m.renderPlot(l.plot.W, l.plot.H), l.plot)
		scene := m.viewPane("3D all sections", focusScene, m.renderScene(l.scene.W, l.scene.H), l.scene)
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(l), " ", plot, " ", scene)
	}

	// Footer: status + hover coordinates, then help
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasData {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.3f y=%.3f  ", m.hoverX, m.hoverY))
	}
	spacerW := max(0, l.width-lipgloss.Width(status)-lipgloss.Width(coords))
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords),
		m.renderHelp())

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.width).Height(m.height).Render(ui)
}

func (m Model) plotTitle() string {
	sec, ok := m.currentSection()
	if !ok {
		return ""
	}
	t := sec.SectionName
	if m.plot != nil && m.plot.Transform().K != 1 {
		t += fmt.Sprintf("  %.2fx", m.plot.Transform().K)
	}
	return t
}

func (m Model) viewPane(title string, f focus, canvas string, r rect) string {
	ts := paneTitleStyle
	if m.focus == f {
		ts = focusTitleStyle
	}
	t := ts.Width(r.W).MaxWidth(r.W).Render(title)
	c := lipgloss.NewStyle().Width(r.W).Height(r.H).Render(canvas)
	return lipgloss.JoinVertical(lipgloss.Left, t, c)
}

func (m Model) viewSidebar(l layout) string {
	styles := list.DefaultStyles()
	if m.focus == focusSections {
		styles.Title = styles.Title.Background(accentFg)
	}
	m.sections.Styles = styles
	m.sections.SetSize(l.sidebar.W, l.listH)
	sections := lipgloss.NewStyle().Width(l.sidebar.W).Height(l.listH).Render(m.sections.View())
	var detail string
	if m.showVertices {
		m.tbl.SetWidth(l.sidebar.W)
		m.tbl.SetHeight(max(2, l.detailH-1))
		detail = lipgloss.JoinVertical(lipgloss.Left, paneTitleStyle.Render("Vertices"), m.tbl.View())
	} else {
		detail = lipgloss.JoinVertical(lipgloss.Left, paneTitleStyle.Render("Detail"), m.detail.vp.View())
	}
	detail = lipgloss.NewStyle().Width(l.sidebar.W).Height(l.detailH).Render(detail)
	return lipgloss.JoinVertical(lipgloss.Left, sections, detail)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch m.focus {
	case focusSections:
		keys = []string{"↑↓ section", "/ filter"}
	case focusPlot:
		keys = []string{"↑↓←→ pan", "+/- zoom", "0 reset", "n/N hover", "Enter select"}
	case focusScene:
		keys = []string{"↑↓←→ orbit", "+/- dolly", "wasd pan", "0 reset"}
	}
	keys = append(keys, "Tab focus", "e export svg", "v vertices", "PgUp/PgDn detail", "? help", "q quit")
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
