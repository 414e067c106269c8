package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg struct{ gen int }

// frameLoop drives the 3D view with self-rescheduling ticks. Every Start or
// Stop bumps the generation, so ticks already in flight are ignored.
type frameLoop struct {
	interval time.Duration
	gen      int
	running  bool
}

func newFrameLoop(interval time.Duration) frameLoop {
	return frameLoop{interval: interval}
}

func (f *frameLoop) Start() tea.Cmd {
	f.gen++
	f.running = true
	return f.tick()
}

func (f *frameLoop) Stop() {
	f.gen++
	f.running = false
}

func (f *frameLoop) Running() bool { return f.running }

// accept reports whether msg was scheduled by the current run.
func (f *frameLoop) accept(msg frameMsg) bool {
	return f.running && msg.gen == f.gen
}

func (f *frameLoop) tick() tea.Cmd {
	gen := f.gen
	return tea.Tick(f.interval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}
