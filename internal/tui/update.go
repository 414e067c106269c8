package tui

import (
	"bytes"
	"fmt"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"secview/internal/dataset"
	"secview/internal/geom"
	"secview/internal/view2d"
	"secview/internal/view3d"
)

const (
	zoomStep   = 1.2
	panStep    = 8.0 // micro pixels
	rotateStep = 0.1 // radians
	dollyStep  = 0.9
	orbitPan   = 0.05 // fraction of camera distance
	dragRotate = 0.05 // radians per cell dragged
)

type exportedMsg struct {
	path string
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case datasetMsg:
		cmd := m.loaded(msg)
		return m, cmd

	case fetchErrMsg:
		m.loading = false
		m.err = msg.err
		m.status = "fetch failed: " + msg.err.Error()
		return m, nil

	case frameMsg:
		if !m.frames.accept(msg) {
			return m, nil
		}
		if m.scene != nil {
			m.scene.Frame()
		}
		return m, m.frames.tick()

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.refreshVertices()
		return m, cmd

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.refreshVertices()
		return m, nil
	}
	return m, nil
}

// loaded builds both views from the dataset and starts the frame loop.
func (m *Model) loaded(msg datasetMsg) tea.Cmd {
	m.loading = false
	m.err = nil
	m.ds = msg.ds
	l := m.layout()

	m.plot = view2d.New(m.detail)
	m.plot.Margin = m.cfg.Margin
	m.scene = view3d.NewView(m.ds, l.scene.W, l.scene.H*2)
	m.sections.SetItems(sectionItems(m.ds))
	m.sections.Select(0)
	if len(m.ds.Sections()) == 0 {
		m.plot.Render("", nil, m.plotSize())
	}
	m.showSection(0)
	m.scene.Frame()

	n := 0
	m.ds.Walk(func(*dataset.Section, *dataset.Polygon) { n++ })
	m.status = fmt.Sprintf("loaded %d sections  polygons=%d  triangles=%d",
		len(m.ds.Sections()), n, m.scene.Scene.TriangleCount())
	return m.frames.Start()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// While filtering, the section list takes every key.
	if m.focus == focusSections && m.sections.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.sections, cmd = m.sections.Update(msg)
		m.syncSection()
		return cmd
	}
	switch msg.String() {
	case "ctrl+c", "q":
		m.frames.Stop()
		return tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		m.status = "focus: " + m.focus.String()
		return nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		m.status = "focus: " + m.focus.String()
		return nil
	case "?":
		m.helpVisible = !m.helpVisible
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		if m.showVertices {
			m.tbl, cmd = m.tbl.Update(msg)
		} else {
			m.detail.vp, cmd = m.detail.vp.Update(msg)
		}
		return cmd
	}
	if m.ds == nil {
		return nil
	}
	switch msg.String() {
	case "e":
		return m.exportSVG()
	case "v":
		m.showVertices = !m.showVertices
		return nil
	}
	switch m.focus {
	case focusSections:
		var cmd tea.Cmd
		m.sections, cmd = m.sections.Update(msg)
		m.syncSection()
		return cmd
	case focusPlot:
		m.plotKey(msg.String())
	case focusScene:
		m.sceneKey(msg.String())
	}
	return nil
}

func (m *Model) plotKey(k string) {
	size := m.plot.Size()
	centre := geom.Vec2{size.W / 2, size.H / 2}
	switch k {
	case "left":
		m.plot.PanBy(panStep, 0)
	case "right":
		m.plot.PanBy(-panStep, 0)
	case "up":
		m.plot.PanBy(0, panStep)
	case "down":
		m.plot.PanBy(0, -panStep)
	case "+", "=":
		m.plot.ZoomBy(zoomStep, centre)
	case "-", "_":
		m.plot.ZoomBy(1/zoomStep, centre)
	case "0":
		m.plot.ResetZoom()
	case "n":
		m.plot.CycleHover(1)
		return
	case "N":
		m.plot.CycleHover(-1)
		return
	case "enter", " ":
		m.selectPolygon(m.plot.State().Hovered)
		return
	default:
		return
	}
	m.status = fmt.Sprintf("zoom: %.2fx", m.plot.Transform().K)
}

func (m *Model) sceneKey(k string) {
	o, cam := m.scene.Orbit, m.scene.Camera
	switch k {
	case "left":
		o.Rotate(rotateStep, 0)
	case "right":
		o.Rotate(-rotateStep, 0)
	case "up":
		o.Rotate(0, -rotateStep)
	case "down":
		o.Rotate(0, rotateStep)
	case "+", "=":
		o.Dolly(dollyStep)
	case "-", "_":
		o.Dolly(1 / dollyStep)
	case "w":
		o.Pan(cam, 0, orbitPan)
	case "s":
		o.Pan(cam, 0, -orbitPan)
	case "a":
		o.Pan(cam, -orbitPan, 0)
	case "d":
		o.Pan(cam, orbitPan, 0)
	case "0":
		fb := m.scene.Framebuffer()
		m.scene = view3d.NewSceneView(m.scene.Scene, fb.W, fb.H)
		m.scene.Frame()
		m.status = "camera reset"
	}
}

// selectPolygon publishes p to the detail panel through the 2D view.
func (m *Model) selectPolygon(p *dataset.Polygon) {
	if p == nil {
		return
	}
	if err := m.plot.Select(p); err != nil {
		m.status = "select: " + err.Error()
		return
	}
	m.status = "selected " + p.HexColor() + " polygon"
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ds == nil {
		return
	}
	l := m.layout()
	switch {
	case m.dragging || l.scene.contains(msg.X, msg.Y):
		m.sceneMouse(msg)
	case l.plot.contains(msg.X, msg.Y):
		m.plotMouse(msg, l.plot.micro(msg.X, msg.Y))
	default:
		m.hoverHasData = false
		m.plot.SetHovered(nil)
		if l.sidebar.contains(msg.X, msg.Y) && msg.Action == tea.MouseActionPress {
			m.focus = focusSections
		}
	}
}

func (m *Model) plotMouse(msg tea.MouseMsg, p geom.Vec2) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.plot.ZoomBy(zoomStep, p)
	case msg.Button == tea.MouseButtonWheelDown:
		m.plot.ZoomBy(1/zoomStep, p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.focus = focusPlot
		hit, err := m.plot.Click(p)
		if err != nil {
			m.status = "select: " + err.Error()
		} else if hit != nil {
			m.status = "selected " + hit.HexColor() + " polygon"
		}
	default:
		m.plot.Hover(p)
	}
	d := m.plot.DataPoint(p)
	m.hoverHasData = true
	m.hoverX, m.hoverY = d[0], d[1]
}

func (m *Model) sceneMouse(msg tea.MouseMsg) {
	m.hoverHasData = false
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scene.Orbit.Dolly(dollyStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scene.Orbit.Dolly(1 / dollyStep)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.focus = focusScene
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Action == tea.MouseActionMotion && m.dragging:
		dx, dy := msg.X-m.dragX, msg.Y-m.dragY
		// cells are twice as tall as they are wide
		m.scene.Orbit.Rotate(-float64(dx)*dragRotate, -float64(dy)*dragRotate*2)
		m.dragX, m.dragY = msg.X, msg.Y
	}
}

// resize lays the widgets and both canvases out for the terminal size.
func (m *Model) resize() {
	l := m.layout()
	m.sections.SetSize(l.sidebar.W, l.listH)
	m.detail.vp.Width = l.sidebar.W
	m.detail.vp.Height = max(1, l.detailH-1)
	if m.plot != nil {
		m.plot.Resize(m.plotSize())
	}
	if m.scene != nil {
		m.scene.Resize(l.scene.W, l.scene.H*2)
		m.scene.Frame()
	}
}

func (m Model) plotSize() view2d.Size {
	r := m.layout().plot
	return view2d.Size{W: float64(r.W * 2), H: float64(r.H * 4)}
}

// exportSVG snapshots the 2D view and writes it to disk off the update loop.
func (m *Model) exportSVG() tea.Cmd {
	if m.plot == nil {
		return nil
	}
	sec, _ := m.currentSection()
	path := "secview-" + safeName(sec.SectionID) + ".svg"
	var buf bytes.Buffer
	if err := m.plot.WriteSVG(&buf); err != nil {
		m.status = "export failed: " + err.Error()
		return nil
	}
	data := buf.Bytes()
	return func() tea.Msg {
		return exportedMsg{path: path, err: os.WriteFile(path, data, 0o644)}
	}
}
