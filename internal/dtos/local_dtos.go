package dtos

import (
	"github.com/shopspring/decimal"

	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
)

// LocalRequest is used for both create and full update.
type LocalRequest struct {
	ZonaID       int64              `json:"zona_id" validate:"required,gt=0"`
	MetrajeID    int64              `json:"metraje_id" validate:"required,gt=0"`
	Estado       models.EstadoLocal `json:"estado" validate:"omitempty,oneof=Disponible Reservado Vendido"`
	PrecioBase   decimal.Decimal    `json:"precio_base"`
	Tipo         models.TipoLocal   `json:"tipo" validate:"required,tipolocal"`
	SubnivelDeID *int64             `json:"subnivel_de_id" validate:"omitempty,gt=0"`
	ClienteID    *int64             `json:"cliente_id" validate:"omitempty,gt=0"`
}

type MetrajeSummary struct {
	Area      string  `json:"area"`
	Perimetro string  `json:"perimetro"`
	Image     *string `json:"image,omitempty"`
}

type LocalResponse struct {
	ID           int64              `json:"id"`
	ZonaID       int64              `json:"zona_id"`
	ZonaCodigo   string             `json:"zona_codigo"`
	MetrajeID    int64              `json:"metraje_id"`
	Estado       models.EstadoLocal `json:"estado"`
	PrecioBase   decimal.Decimal    `json:"precio_base"`
	Tipo         models.TipoLocal   `json:"tipo"`
	SubnivelDeID *int64             `json:"subnivel_de_id,omitempty"`
	ClienteID    *int64             `json:"cliente_id,omitempty"`
	Metraje      *MetrajeSummary    `json:"metraje,omitempty"`
	RowVersion   int64              `json:"row_version"`
}

func NewLocalResponse(l *models.Local) LocalResponse {
	resp := LocalResponse{
		ID:           l.ID,
		ZonaID:       l.ZonaID,
		ZonaCodigo:   l.ZoneCode(),
		MetrajeID:    l.MetrajeID,
		Estado:       l.Estado,
		PrecioBase:   l.PrecioBase,
		Tipo:         l.Tipo,
		SubnivelDeID: l.SubnivelDeID,
		ClienteID:    l.ClienteID,
		RowVersion:   l.RowVersion,
	}
	if m := l.Metraje; m != nil {
		resp.Metraje = &MetrajeSummary{Area: m.Area, Perimetro: m.Perimetro, Image: m.Image}
	}
	return resp
}

// LocalDetailResponse is a local rendered for display: formatted price,
// status and area, with its subniveles nested.
type LocalDetailResponse struct {
	ID   int64            `json:"id"`
	Tipo models.TipoLocal `json:"tipo"`
	layout.Node
}

type GruposResponse struct {
	Grupos []layout.Group `json:"grupos"`
}
