package catalog

import (
	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
)

// Stats counts how many layout nodes found a live record.
type Stats struct {
	Matched int
	Missed  int
}

// Merge overlays live data onto a copy of groups. groups is not modified.
func Merge(groups []layout.Group, idx Index) []layout.Group {
	out, _ := MergeWithStats(groups, idx)
	return out
}

// MergeWithStats is Merge that also reports match counts.
func MergeWithStats(groups []layout.Group, idx Index) ([]layout.Group, Stats) {
	out := layout.CloneGroups(groups)
	var st Stats
	layout.WalkGroups(out, func(n *layout.Node) {
		if overlay(n, idx[n.ZonaCodigo]) {
			st.Matched++
		} else {
			st.Missed++
		}
	})
	return out, st
}

// NodeFromLocal renders a single local with the same field rules the
// merge uses, starting from an empty node.
func NodeFromLocal(l *models.Local) layout.Node {
	n := layout.Node{ZonaCodigo: l.ZoneCode()}
	overlay(&n, l)
	return n
}

func overlay(n *layout.Node, l *models.Local) bool {
	if l == nil {
		return false
	}

	n.Precio = FormatPrice(l.PrecioBase)
	if l.Estado != "" {
		n.Estado = CapitalizeFirst(string(l.Estado))
	}
	if m := l.Metraje; m != nil {
		if m.Area != "" {
			n.Area = FormatArea(m.Area)
		}
		if m.Perimetro != "" {
			n.Perimetro = m.Perimetro
		}
		if m.Image != nil && *m.Image != "" {
			n.Image = *m.Image
		}
	}
	if z := l.Zona; z != nil && z.LineaBase != nil && *z.LineaBase != "" {
		n.LineaBase = string(*z.LineaBase)
	}
	return true
}
