package main

import (
	"fmt"
	"io"
	"strings"

	"masjid/internal/orgchart"
)

type treeWriter struct {
	w   io.Writer
	err error
}

func (t *treeWriter) line(depth int, format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (t *treeWriter) group(title string, recs []orgchart.StaffRecord) {
	if len(recs) == 0 {
		return
	}
	t.line(0, "%s", title)
	for _, r := range recs {
		t.line(1, "- %s", label(r))
	}
}

func writeTree(w io.Writer, chart orgchart.OrgChart) error {
	t := &treeWriter{w: w}
	t.group("Pelindung", chart.Protectors)
	t.group("Penasehat", chart.Advisors)
	t.group("Pengurus Inti", chart.CoreExecutives)
	for _, p := range chart.Pillars {
		t.line(0, "%s", label(p.ViceChair))
		for _, d := range p.Divisions {
			t.line(1, "Bidang %s", d.Name)
			if d.Coordinator != nil {
				t.line(2, "Koordinator: %s", d.Coordinator.Name)
			}
			if d.Deputy != nil {
				t.line(2, "Wakil: %s", d.Deputy.Name)
			}
			for _, m := range d.Members {
				t.line(2, "- %s", m.Name)
			}
		}
	}
	t.group("Lainnya", chart.Unclassified)
	t.line(0, "Total: %d", chart.Count())
	return t.err
}

func label(r orgchart.StaffRecord) string {
	if r.Role == "" {
		return r.Name
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Role)
}
