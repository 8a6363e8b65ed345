package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente is a purchase record: the buyer, an optional co-owner and
// spouse, and the reservation deposit.
type Cliente struct {
	ID                 int64      `json:"id"`
	NombresCliente     string     `json:"nombres_cliente"`
	ApellidosCliente   string     `json:"apellidos_cliente"`
	DNICliente         string     `json:"dni_cliente"`
	RUCCliente         *string    `json:"ruc_cliente,omitempty"`
	FNacimientoCliente *time.Time `json:"f_nacimiento_cliente,omitempty"`
	OcupacionCliente   *string    `json:"ocupacion_cliente,omitempty"`
	PhoneCliente       string     `json:"phone_cliente"`
	DireccionCliente   string     `json:"direccion_cliente"`
	MailCliente        string     `json:"mail_cliente"`

	NombresCopropietario    *string `json:"nombres_copropietario,omitempty"`
	ApellidosCopropietario  *string `json:"apellidos_copropietario,omitempty"`
	DNICopropietario        *string `json:"dni_copropietario,omitempty"`
	PhoneCopropietario      *string `json:"phone_copropietario,omitempty"`
	MailCopropietario       *string `json:"mail_copropietario,omitempty"`
	ParentescoCopropietario *string `json:"parentesco_copropietario,omitempty"`

	NombresConyuge *string `json:"nombres_conyuge,omitempty"`
	DNIConyuge     *string `json:"dni_conyuge,omitempty"`

	MetodoSeparacion MetodoSeparacion `json:"metodo_separacion"`
	Moneda           Moneda           `json:"moneda"`
	NumeroOperacion  *string          `json:"numero_operacion,omitempty"`
	FechaPlazo       string           `json:"fecha_plazo"`
	MontoArras       decimal.Decimal  `json:"monto_arras"`
	FechaRegistro    time.Time        `json:"fecha_registro"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Versioned
}

func (c *Cliente) GetID() int64 { return c.ID }
