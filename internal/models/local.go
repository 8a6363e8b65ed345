package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Local is a commercial unit. Zona and Metraje are populated by the
// joined reads and are nil otherwise.
type Local struct {
	ID           int64           `json:"id"`
	ZonaID       int64           `json:"zona_id"`
	MetrajeID    int64           `json:"metraje_id"`
	Estado       EstadoLocal     `json:"estado"`
	PrecioBase   decimal.Decimal `json:"precio_base"`
	Tipo         TipoLocal       `json:"tipo"`
	SubnivelDeID *int64          `json:"subnivel_de_id,omitempty"`
	ClienteID    *int64          `json:"cliente_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Versioned

	Zona    *Zona    `json:"zona,omitempty"`
	Metraje *Metraje `json:"metraje,omitempty"`
}

func (l *Local) GetID() int64 { return l.ID }

// ZoneCode returns the code of the joined zona, or "" when it was not loaded.
func (l *Local) ZoneCode() string {
	if l.Zona == nil {
		return ""
	}
	return l.Zona.Codigo
}
