package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/observability"
	"github.com/plazacomercial/locales-service/internal/utils"
)

func catalogTable() *layout.Table {
	return layout.NewTable([]layout.Group{
		{
			Tipo: string(models.TipoGrupo1Larga),
			Locales: []layout.Node{
				{
					ZonaCodigo: "PT 1",
					Estado:     "Disponible",
					Subniveles: []layout.Node{{ZonaCodigo: "PT 1-A", Estado: "Disponible"}},
				},
				{ZonaCodigo: "PT 2", Estado: "Disponible"},
			},
		},
	})
}

func catalogStore() *fakeLocalRepo {
	tier := models.LineaBaseSegunda
	zonas := newFakeZonaRepo(
		&models.Zona{ID: 1, Codigo: "PT 1", LineaBase: &tier},
		&models.Zona{ID: 2, Codigo: "PT 1-A"},
	)
	metrajes := &fakeMetrajeRepo{byID: map[int64]*models.Metraje{
		1: {ID: 1, Area: "30", Perimetro: "22"},
	}}
	store := newFakeLocalRepo(zonas, metrajes)
	store.put(&models.Local{ZonaID: 1, MetrajeID: 1, Estado: models.EstadoVendido, PrecioBase: decimal.RequireFromString("51990")})
	store.put(&models.Local{ZonaID: 2, MetrajeID: 1, Estado: "reservado", PrecioBase: decimal.RequireFromString("1234.5")})
	return store
}

func TestGroupedLocales(t *testing.T) {
	store := catalogStore()
	metrics := observability.NewNopMetrics()
	tbl := catalogTable()
	svc := NewCatalogService(tbl, store, metrics)

	groups, err := svc.GroupedLocales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, store.fetchCalls)

	require.Len(t, groups, 1)
	pt1 := groups[0].Locales[0]
	assert.Equal(t, "$51,990", pt1.Precio)
	assert.Equal(t, "Vendido", pt1.Estado)
	assert.Equal(t, "30 m²", pt1.Area)
	assert.Equal(t, "Segunda Línea", pt1.LineaBase)

	sub := pt1.Subniveles[0]
	assert.Equal(t, "$1,234", sub.Precio)
	assert.Equal(t, "Reservado", sub.Estado)

	// no live row
	assert.Equal(t, layout.Node{ZonaCodigo: "PT 2", Estado: "Disponible"}, groups[0].Locales[1])

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CatalogNodesTotal.WithLabelValues("matched")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogNodesTotal.WithLabelValues("missed")))

	// the shared layout is untouched
	assert.Equal(t, "", tbl.Groups()[0].Locales[0].Precio)
}

func TestGroupedLocalesStoreFailure(t *testing.T) {
	store := catalogStore()
	store.fetchErr = errors.New("connection refused")
	metrics := observability.NewNopMetrics()
	svc := NewCatalogService(catalogTable(), store, metrics)

	_, err := svc.GroupedLocales(context.Background())
	requireAppError(t, err, http.StatusInternalServerError, utils.ErrCodeInternal)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogLookupErrors))
}
