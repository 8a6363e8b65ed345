package models

import "time"

// Zona is a sellable position on the floor plan, identified by its
// public code (e.g. "PT 12").
type Zona struct {
	ID              int64      `json:"id"`
	CategoriaNombre string     `json:"categoria_nombre"`
	Codigo          string     `json:"codigo"`
	LineaBase       *LineaBase `json:"linea_base,omitempty"`
	TieneSubniveles bool       `json:"tiene_subniveles"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Versioned
}

func (z *Zona) GetID() int64 { return z.ID }
