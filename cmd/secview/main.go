// secview shows a polygon dataset one section at a time as a 2D chart, next
// to a 3D scene of every section.
//
// Usage:
//
//	secview --url http://localhost:3000/data
//	secview --file data/vertices.json --svg out.svg --section s1
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"secview/internal/config"
	"secview/internal/dataset"
	"secview/internal/tui"
	"secview/internal/view2d"
)

func main() {
	cfgPath := flag.String("config", "secview.yaml", "YAML config file")
	url := flag.String("url", "", "dataset URL (overrides config)")
	file := flag.String("file", "", "read the dataset from a file instead of a URL")
	svgOut := flag.String("svg", "", "write the 2D view of --section to this SVG file and exit")
	section := flag.String("section", "", "section id for --svg (default: first section)")
	width := flag.Int("width", 800, "SVG width in pixels")
	height := flag.Int("height", 600, "SVG height in pixels")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *url != "" {
		cfg.Viewer.DataURL = *url
		cfg.Viewer.DataFile = ""
	}
	if *file != "" {
		cfg.Viewer.DataFile = *file
	}

	if *svgOut != "" {
		if err := exportSVG(cfg.Viewer, *svgOut, *section, *width, *height); err != nil {
			log.Fatal(err)
		}
		return
	}

	f, err := tea.LogToFile(cfg.Viewer.LogFile, "secview")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	m := tui.New(cfg.Viewer, tui.NewLoader(cfg.Viewer))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// exportSVG renders one section headlessly with the library's default margin.
func exportSVG(cfg config.Viewer, out, section string, w, h int) error {
	ctx := context.Background()
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}
	ds, err := tui.NewLoader(cfg)(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if len(ds.Sections()) == 0 {
		return fmt.Errorf("%w: dataset is empty", dataset.ErrNoSection)
	}
	sec := &ds.Sections()[0]
	if section != "" {
		s, ok := ds.Section(section)
		if !ok {
			return fmt.Errorf("%w: %s", dataset.ErrNoSection, section)
		}
		sec = s
	}
	v := view2d.New(nil)
	v.Render(sec.SectionID, sec.Polygons, view2d.Size{W: float64(w), H: float64(h)})

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := v.WriteSVG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Printf("wrote section %s to %s", sec.SectionID, out)
	return f.Close()
}
