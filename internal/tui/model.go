package tui

import (
	"context"
	"net/http"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"secview/internal/config"
	"secview/internal/dataset"
	"secview/internal/view2d"
	"secview/internal/view3d"
)

type focus int

const (
	focusSections focus = iota
	focusPlot
	focusScene
)

func (f focus) String() string {
	switch f {
	case focusPlot:
		return "2D"
	case focusScene:
		return "3D"
	default:
		return "sections"
	}
}

// Loader produces the dataset the viewer shows.
type Loader func(ctx context.Context) (*dataset.Dataset, error)

// NewLoader reads cfg.DataFile when set and fetches cfg.DataURL otherwise.
func NewLoader(cfg config.Viewer) Loader {
	if cfg.DataFile != "" {
		return func(context.Context) (*dataset.Dataset, error) {
			return dataset.LoadFile(cfg.DataFile)
		}
	}
	client := &http.Client{Timeout: cfg.FetchTimeout}
	return func(ctx context.Context) (*dataset.Dataset, error) {
		return dataset.Fetch(ctx, client, cfg.DataURL)
	}
}

type Model struct {
	width  int
	height int

	cfg    config.Viewer
	load   Loader
	source string

	helpVisible bool
	focus       focus
	status      string
	loading     bool
	err         error

	// Data
	ds      *dataset.Dataset
	current int

	// Widgets
	sections list.Model
	detail   *detailPanel

	// vertex table of the selection, shown in place of the JSON detail
	showVertices bool
	tbl          table.Model
	tableFor     *dataset.Polygon

	plot   *view2d.View
	scene  *view3d.View
	frames frameLoop

	// hover over the 2D canvas
	hoverHasData bool
	hoverX       float64
	hoverY       float64

	// mouse drag on the 3D canvas
	dragging bool
	dragX    int
	dragY    int
}

// detailPanel shows the selected polygon. It is the 2D view's detail sink.
type detailPanel struct {
	vp      viewport.Model
	content string
}

func (d *detailPanel) SetDetail(s string) {
	d.content = s
	d.vp.SetContent(s)
	d.vp.GotoTop()
}

// New returns a model that loads its dataset with load once started.
func New(cfg config.Viewer, load Loader) Model {
	m := Model{
		cfg:         cfg,
		load:        load,
		source:      cfg.DataURL,
		helpVisible: true,
		loading:     true,
		current:     -1,
		status:      "loading dataset",
		frames:      newFrameLoop(cfg.FrameInterval()),
	}
	if cfg.DataFile != "" {
		m.source = cfg.DataFile
	}
	d := list.NewDefaultDelegate()
	m.sections = list.New(nil, d, 0, 0)
	m.sections.Title = "Sections"
	m.sections.SetShowHelp(false)
	m.sections.SetShowStatusBar(false)
	m.sections.SetFilteringEnabled(true)
	m.detail = &detailPanel{vp: viewport.New(0, 0)}
	m.detail.SetDetail(noSelection)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(8)
	return m
}

const noSelection = "click a polygon in the 2D view"

type datasetMsg struct{ ds *dataset.Dataset }

type fetchErrMsg struct{ err error }

// Init starts the one dataset load. Both views are built when it arrives.
func (m Model) Init() tea.Cmd {
	load, timeout := m.load, m.cfg.FetchTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		ds, err := load(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return datasetMsg{ds: ds}
	}
}

// Plot and Scene expose the views once the dataset has loaded.
func (m Model) Plot() *view2d.View        { return m.plot }
func (m Model) Scene() *view3d.View       { return m.scene }
func (m Model) Err() error                { return m.err }
func (m Model) Dataset() *dataset.Dataset { return m.ds }
