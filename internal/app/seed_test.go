package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type memCategorias struct {
	repositories.CategoriaRepository
	rows []*models.Categoria
}

func (m *memCategorias) GetByNombre(_ context.Context, nombre string) (*models.Categoria, error) {
	for _, c := range m.rows {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategorias) Create(_ context.Context, c *models.Categoria) error {
	c.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, c)
	return nil
}

type memZonas struct {
	repositories.ZonaRepository
	rows []*models.Zona
}

func (m *memZonas) GetByCodigo(_ context.Context, codigo string) (*models.Zona, error) {
	for _, z := range m.rows {
		if z.Codigo == codigo {
			return z, nil
		}
	}
	return nil, nil
}

func (m *memZonas) Create(_ context.Context, z *models.Zona) error {
	z.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, z)
	return nil
}

type memMetrajes struct {
	repositories.MetrajeRepository
	rows []*models.Metraje
}

func (m *memMetrajes) GetByArea(_ context.Context, area string) (*models.Metraje, error) {
	for _, r := range m.rows {
		if r.Area == area {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memMetrajes) Create(_ context.Context, r *models.Metraje) error {
	r.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, r)
	return nil
}

type memLocales struct {
	repositories.LocalRepository
	rows []*models.Local
}

func (m *memLocales) Create(_ context.Context, l *models.Local) error {
	l.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, l)
	return nil
}

type memUsers struct {
	repositories.UserRepository
	rows []*models.User
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	u.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, u)
	return nil
}

func seedTable() *layout.Table {
	return layout.NewTable([]layout.Group{
		{
			Tipo: string(models.TipoGrupo1Larga),
			Locales: []layout.Node{
				{
					ZonaCodigo: "PT 1",
					Image:      "../assets/tipos_locales/grande.png",
					LineaBase:  "Primera Línea",
					Subniveles: []layout.Node{
						{ZonaCodigo: "PT 1-A", Image: "../assets/tipos_locales/chico.png"},
						{ZonaCodigo: "PT 1-B", Image: "../assets/tipos_locales/chico.png"},
					},
				},
			},
		},
		{
			Tipo:    string(models.TipoSecundariaG1Izquierda),
			Locales: []layout.Node{{ZonaCodigo: "PT 2", Image: "../assets/tipos_locales/grande.png"}},
		},
	})
}

func TestSeedAllTestData(t *testing.T) {
	cats, zonas, metrajes, locales, users := &memCategorias{}, &memZonas{}, &memMetrajes{}, &memLocales{}, &memUsers{}
	repos := SeedRepos{Categorias: cats, Zonas: zonas, Metrajes: metrajes, Locales: locales, Users: users}
	ctx := context.Background()

	require.NoError(t, SeedAllTestData(ctx, seedTable(), repos, "staff-s3cret"))

	require.Len(t, users.rows, 1)
	assert.Equal(t, models.RoleStaff, users.rows[0].Role)
	assert.True(t, utils.CheckPasswordHash("staff-s3cret", users.rows[0].PasswordHash))
	require.Len(t, cats.rows, 1)
	require.Len(t, zonas.rows, 4)
	assert.True(t, zonas.rows[0].TieneSubniveles)
	require.NotNil(t, zonas.rows[0].LineaBase)
	assert.Equal(t, models.LineaBasePrimera, *zonas.rows[0].LineaBase)
	assert.Nil(t, zonas.rows[1].LineaBase)

	// one metraje per footprint
	assert.Len(t, metrajes.rows, 2)

	require.Len(t, locales.rows, 4)
	parent := locales.rows[0]
	assert.Nil(t, parent.SubnivelDeID)
	assert.Equal(t, models.TipoGrupo1Larga, parent.Tipo)
	require.NotNil(t, locales.rows[1].SubnivelDeID)
	assert.Equal(t, parent.ID, *locales.rows[1].SubnivelDeID)
	assert.Equal(t, models.TipoSecundariaG1Izquierda, locales.rows[3].Tipo)
	assert.Equal(t, "46500", parent.PrecioBase.String())

	// second run is a no-op
	require.NoError(t, SeedAllTestData(ctx, seedTable(), repos, "staff-s3cret"))
	assert.Len(t, locales.rows, 4)
	assert.Len(t, users.rows, 1)
}

func TestSeedAllTestDataWithoutStaffPassword(t *testing.T) {
	users := &memUsers{}
	repos := SeedRepos{Categorias: &memCategorias{}, Zonas: &memZonas{}, Metrajes: &memMetrajes{}, Locales: &memLocales{}, Users: users}

	require.NoError(t, SeedAllTestData(context.Background(), seedTable(), repos, ""))
	assert.Empty(t, users.rows, "no staff user is created without a configured password")
}

func TestSeedEstado(t *testing.T) {
	assert.Equal(t, models.EstadoDisponible, seedEstado(1))
	assert.Equal(t, models.EstadoVendido, seedEstado(5))
	assert.Equal(t, models.EstadoReservado, seedEstado(7))
}
