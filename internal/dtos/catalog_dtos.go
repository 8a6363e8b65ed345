package dtos

import "github.com/plazacomercial/locales-service/internal/models"

type CreateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type CreateZonaRequest struct {
	CategoriaNombre string            `json:"categoria_nombre" validate:"required,max=100"`
	Codigo          string            `json:"codigo" validate:"required,max=10"`
	LineaBase       *models.LineaBase `json:"linea_base" validate:"omitempty,oneof='Primera Línea' 'Segunda Línea' 'Tercera Línea'"`
	TieneSubniveles bool              `json:"tiene_subniveles"`
}

// UpdateZonaRequest is a partial update; nil fields are left unchanged.
type UpdateZonaRequest struct {
	CategoriaNombre *string           `json:"categoria_nombre" validate:"omitempty,min=1,max=100"`
	Codigo          *string           `json:"codigo" validate:"omitempty,min=1,max=10"`
	LineaBase       *models.LineaBase `json:"linea_base" validate:"omitempty,oneof='Primera Línea' 'Segunda Línea' 'Tercera Línea'"`
	TieneSubniveles *bool             `json:"tiene_subniveles"`
}

type ZonaResponse struct {
	ID              int64             `json:"id"`
	Categoria       CategoriaRef      `json:"categoria"`
	Codigo          string            `json:"codigo"`
	LineaBase       *models.LineaBase `json:"linea_base,omitempty"`
	TieneSubniveles bool              `json:"tiene_subniveles"`
	RowVersion      int64             `json:"row_version"`
}

type CategoriaRef struct {
	Nombre string `json:"nombre"`
}

func NewZonaResponse(z *models.Zona) ZonaResponse {
	return ZonaResponse{
		ID:              z.ID,
		Categoria:       CategoriaRef{Nombre: z.CategoriaNombre},
		Codigo:          z.Codigo,
		LineaBase:       z.LineaBase,
		TieneSubniveles: z.TieneSubniveles,
		RowVersion:      z.RowVersion,
	}
}

type CreateMetrajeRequest struct {
	Area      string  `json:"area" validate:"required,max=50"`
	Perimetro string  `json:"perimetro" validate:"required,max=50"`
	Image     *string `json:"image" validate:"omitempty,max=255"`
}
