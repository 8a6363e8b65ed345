// Package layout holds the hand-authored catalog layout: display groups
// of units, each unit optionally nesting sub-units. The table is loaded
// once at startup and never mutated afterwards.
package layout

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed layout.json
var defaultLayout []byte

//go:embed layout.schema.json
var layoutSchema []byte

// Node is one unit position in the layout. Display fields hold the
// authored defaults until they are overlaid with live data.
type Node struct {
	ZonaCodigo string `json:"zona_codigo"`
	Precio     string `json:"precio"`
	Estado     string `json:"estado"`
	Area       string `json:"area"`
	Perimetro  string `json:"perimetro"`
	Image      string `json:"image"`
	LineaBase  string `json:"linea_base"`
	Altura     string `json:"altura,omitempty"`
	Subniveles []Node `json:"subniveles,omitempty"`
}

// Group is a titled, ordered list of units.
type Group struct {
	Tipo    string `json:"tipo"`
	Locales []Node `json:"locales"`
}

type document struct {
	Grupos []Group `json:"grupos"`
}

// Table is the validated, read-only layout.
type Table struct {
	groups []Group
}

// Default returns the layout compiled into the binary.
func Default() (*Table, error) {
	return Parse(defaultLayout)
}

// LoadFile reads and validates a layout document from disk.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse validates raw against the layout schema and decodes it.
func Parse(raw []byte) (*Table, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(layoutSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validate layout: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid layout: %s", strings.Join(msgs, "; "))
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return &Table{groups: doc.Grupos}, nil
}

// NewTable builds a table from already-typed groups. The input is copied.
func NewTable(groups []Group) *Table {
	return &Table{groups: CloneGroups(groups)}
}

// Groups returns a deep copy of the layout; callers may modify it freely.
func (t *Table) Groups() []Group {
	return CloneGroups(t.groups)
}

// Len returns the number of groups.
func (t *Table) Len() int { return len(t.groups) }

// Walk visits every node depth-first, parents before their subniveles,
// in authored order.
func (t *Table) Walk(fn func(n *Node)) {
	WalkGroups(t.groups, fn)
}

// WalkGroups is Walk over an arbitrary group slice. fn may modify the
// node it receives.
func WalkGroups(groups []Group, fn func(n *Node)) {
	for gi := range groups {
		walkNodes(groups[gi].Locales, fn)
	}
}

func walkNodes(nodes []Node, fn func(n *Node)) {
	for i := range nodes {
		fn(&nodes[i])
		walkNodes(nodes[i].Subniveles, fn)
	}
}

// CloneGroups deep-copies groups, including every level of subniveles.
func CloneGroups(groups []Group) []Group {
	if groups == nil {
		return nil
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Tipo: g.Tipo, Locales: cloneNodes(g.Locales)}
	}
	return out
}

// Clone deep-copies a single node.
func (n Node) Clone() Node {
	n.Subniveles = cloneNodes(n.Subniveles)
	return n
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
