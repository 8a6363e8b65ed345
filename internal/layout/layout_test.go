package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	require.Equal(t, 12, tbl.Len())

	groups := tbl.Groups()
	assert.Equal(t, "Entrada secundaria grupo 1 izquierda", groups[0].Tipo)
	assert.Equal(t, "PT 1", groups[0].Locales[0].ZonaCodigo)

	nested := 0
	tbl.Walk(func(n *Node) {
		if len(n.Subniveles) > 0 {
			nested++
		}
	})
	assert.Greater(t, nested, 0, "default layout should carry subniveles")
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"missing grupos":      `{}`,
		"unknown field":       `{"grupos":[{"tipo":"A","locales":[],"extra":1}]}`,
		"code too long":       `{"grupos":[{"tipo":"A","locales":[{"zona_codigo":"PT 1234567890"}]}]}`,
		"bad nested node":     `{"grupos":[{"tipo":"A","locales":[{"zona_codigo":"PT 1","subniveles":[{"estado":1}]}]}]}`,
		"not json":            `grupos`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestParseAcceptsNodeWithoutZonaCodigo(t *testing.T) {
	doc := `{"grupos":[{"tipo":"A","locales":[
		{"zona_codigo":"PT 1"},
		{"estado":"Disponible","precio":"$1"}
	]}]}`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)

	locales := tbl.Groups()[0].Locales
	require.Len(t, locales, 2)
	assert.Equal(t, "", locales[1].ZonaCodigo)
	assert.Equal(t, "Disponible", locales[1].Estado)
}

func TestParseDeepNesting(t *testing.T) {
	doc := `{"grupos":[{"tipo":"A","locales":[
		{"zona_codigo":"PT 1","subniveles":[
			{"zona_codigo":"PT 1-A","subniveles":[
				{"zona_codigo":"PT 1-A-1","altura":"alto"}
			]}
		]}
	]}]}`
	tbl, err := Parse([]byte(doc))
	require.NoError(t, err)

	var codes []string
	tbl.Walk(func(n *Node) { codes = append(codes, n.ZonaCodigo) })
	assert.Equal(t, []string{"PT 1", "PT 1-A", "PT 1-A-1"}, codes)
}

func TestGroupsReturnsIndependentCopy(t *testing.T) {
	tbl := NewTable([]Group{{
		Tipo: "A",
		Locales: []Node{{
			ZonaCodigo: "PT 1",
			Precio:     "$0",
			Subniveles: []Node{{ZonaCodigo: "PT 1-A", Precio: "$0"}},
		}},
	}})

	copy1 := tbl.Groups()
	copy1[0].Locales[0].Precio = "$9"
	copy1[0].Locales[0].Subniveles[0].Precio = "$9"
	copy1[0].Tipo = "B"

	copy2 := tbl.Groups()
	assert.Equal(t, "A", copy2[0].Tipo)
	assert.Equal(t, "$0", copy2[0].Locales[0].Precio)
	assert.Equal(t, "$0", copy2[0].Locales[0].Subniveles[0].Precio)
}

func TestNodeCloneLeavesNilSubniveles(t *testing.T) {
	n := Node{ZonaCodigo: "PT 1"}
	c := n.Clone()
	assert.Nil(t, c.Subniveles)
}
