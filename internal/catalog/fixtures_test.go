package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
)

type spyStore struct {
	calls [][]string
	units []*models.Local
	err   error
}

func (s *spyStore) FetchUnitsByZoneCodes(_ context.Context, codes []string) ([]*models.Local, error) {
	s.calls = append(s.calls, append([]string(nil), codes...))
	if s.err != nil {
		return nil, s.err
	}
	return s.units, nil
}

func newLocal(id int64, code, estado, precio string) *models.Local {
	tier := models.LineaBasePrimera
	img := "../assets/tipos_locales/grande.png"
	return &models.Local{
		ID:         id,
		Estado:     models.EstadoLocal(estado),
		PrecioBase: decimal.RequireFromString(precio),
		Tipo:       models.TipoGrupo1Larga,
		Zona:       &models.Zona{ID: id, Codigo: code, LineaBase: &tier},
		Metraje:    &models.Metraje{ID: id, Area: "24.5", Perimetro: "20.1", Image: &img},
	}
}

func sampleGroups() []layout.Group {
	return []layout.Group{
		{
			Tipo: "Entrada grupo 1 larga",
			Locales: []layout.Node{
				{ZonaCodigo: "PT 1", Precio: "$99", Estado: "Disponible", Area: "18.5 m²", Perimetro: "17.4", Image: "default.png", LineaBase: "Segunda Línea", Altura: "doble"},
				{
					ZonaCodigo: "PT 2",
					Estado:     "Disponible",
					Subniveles: []layout.Node{
						{ZonaCodigo: "PT 2-A", Estado: "Disponible"},
						{ZonaCodigo: "PT 2-B", Estado: "Disponible", Subniveles: []layout.Node{
							{ZonaCodigo: "PT 2-B-1", Estado: "Disponible"},
						}},
					},
				},
			},
		},
		{
			Tipo: "Entrada grupo 2 larga",
			Locales: []layout.Node{
				{ZonaCodigo: "PT 3", Estado: "Disponible"},
				{ZonaCodigo: "", Estado: "Disponible"},
			},
		},
	}
}
