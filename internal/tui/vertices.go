package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"secview/internal/dataset"
)

const vertexColW = 9

// refreshVertices rebuilds the vertex table when the selection changed.
func (m *Model) refreshVertices() {
	if m.plot == nil {
		return
	}
	sel := m.plot.Selected()
	if sel == m.tableFor {
		return
	}
	m.tableFor = sel
	cols, rows := vertexRows(sel)
	tcols := make([]table.Column, 0, len(cols))
	for _, c := range cols {
		w := vertexColW
		if c == "#" {
			w = 3
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	// clear rows first so they never disagree with the columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}

// vertexRows lays the planar and spatial rings of p side by side. The rings
// may differ in length; missing cells stay blank.
func vertexRows(p *dataset.Polygon) ([]string, []table.Row) {
	cols := []string{"#", "x", "y", "X", "Y", "Z"}
	if p == nil {
		return cols, nil
	}
	r2, r3 := p.Ring2D(), p.Ring3D()
	n := max(len(r2), len(r3))
	rows := make([]table.Row, 0, n)
	for i := 0; i < n; i++ {
		row := make(table.Row, len(cols))
		row[0] = strconv.Itoa(i + 1)
		if i < len(r2) {
			r := r2[i]
			row[1], row[2] = fmtCoord(r[0]), fmtCoord(r[1])
		}
		if i < len(r3) {
			r := r3[i]
			row[3], row[4], row[5] = fmtCoord(r.X), fmtCoord(r.Y), fmtCoord(r.Z)
		}
		rows = append(rows, row)
	}
	return cols, rows
}

func fmtCoord(v float64) string { return fmt.Sprintf("%.3f", v) }
