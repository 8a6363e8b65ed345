package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/utils"
)

func newLocalFixture() (LocalService, *fakeLocalRepo) {
	tier := models.LineaBasePrimera
	img := "../assets/tipos_locales/grande.png"
	zonas := newFakeZonaRepo(
		&models.Zona{ID: 1, Codigo: "PT 40", LineaBase: &tier, TieneSubniveles: true},
		&models.Zona{ID: 2, Codigo: "PT 40-A"},
		&models.Zona{ID: 3, Codigo: "PT 40-B"},
	)
	metrajes := &fakeMetrajeRepo{byID: map[int64]*models.Metraje{
		1: {ID: 1, Area: "48", Perimetro: "28", Image: &img},
	}}
	locals := newFakeLocalRepo(zonas, metrajes)
	return NewLocalService(locals, zonas, metrajes), locals
}

func localReq(zonaID int64) dtos.LocalRequest {
	return dtos.LocalRequest{
		ZonaID:     zonaID,
		MetrajeID:  1,
		PrecioBase: decimal.RequireFromString("76500"),
		Tipo:       models.TipoGrupo2Larga,
	}
}

func TestLocalCreateDefaultsAndRefs(t *testing.T) {
	svc, _ := newLocalFixture()

	l, err := svc.Create(context.Background(), localReq(1))
	require.NoError(t, err)
	assert.Equal(t, models.EstadoDisponible, l.Estado)
	assert.Equal(t, "PT 40", l.ZoneCode())

	_, err = svc.Create(context.Background(), localReq(99))
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)

	bad := localReq(1)
	bad.MetrajeID = 42
	_, err = svc.Create(context.Background(), bad)
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)

	orphan := localReq(2)
	orphan.SubnivelDeID = utils.Ptr(int64(77))
	_, err = svc.Create(context.Background(), orphan)
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}

func TestLocalGetDetailNestsSubniveles(t *testing.T) {
	svc, _ := newLocalFixture()
	ctx := context.Background()

	parent, err := svc.Create(ctx, localReq(1))
	require.NoError(t, err)
	for _, zonaID := range []int64{2, 3} {
		req := localReq(zonaID)
		req.SubnivelDeID = utils.Ptr(parent.ID)
		req.Estado = models.EstadoReservado
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	detail, err := svc.GetDetail(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, detail.ID)
	assert.Equal(t, models.TipoGrupo2Larga, detail.Tipo)
	assert.Equal(t, "PT 40", detail.ZonaCodigo)
	assert.Equal(t, "$76,500", detail.Precio)
	assert.Equal(t, "48 m²", detail.Area)
	assert.Equal(t, "Primera Línea", detail.LineaBase)

	require.Len(t, detail.Subniveles, 2)
	assert.Equal(t, "PT 40-A", detail.Subniveles[0].ZonaCodigo)
	assert.Equal(t, "Reservado", detail.Subniveles[0].Estado)
	assert.Equal(t, "PT 40-B", detail.Subniveles[1].ZonaCodigo)

	_, err = svc.GetDetail(ctx, 999)
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}

func TestLocalUpdate(t *testing.T) {
	svc, locals := newLocalFixture()
	ctx := context.Background()

	l, err := svc.Create(ctx, localReq(1))
	require.NoError(t, err)

	req := localReq(2)
	req.Estado = models.EstadoVendido
	updated, err := svc.Update(ctx, l.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoVendido, updated.Estado)
	assert.Equal(t, "PT 40-A", updated.ZoneCode())
	assert.Equal(t, int64(2), locals.byID[l.ID].RowVersion)

	self := localReq(1)
	self.SubnivelDeID = utils.Ptr(l.ID)
	_, err = svc.Update(ctx, l.ID, self)
	requireAppError(t, err, http.StatusConflict, utils.ErrCodeConflict)

	_, err = svc.Update(ctx, 999, localReq(1))
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}

func TestLocalDelete(t *testing.T) {
	svc, _ := newLocalFixture()
	l, err := svc.Create(context.Background(), localReq(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), l.ID))
	err = svc.Delete(context.Background(), l.ID)
	requireAppError(t, err, http.StatusNotFound, utils.ErrCodeNotFound)
}
