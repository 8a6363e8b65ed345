package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plazacomercial/locales-service/internal/models"
)

type CreateClienteRequest struct {
	LocalID int64 `json:"local_id" validate:"required,gt=0"`

	NombresCliente     string     `json:"nombres_cliente" validate:"required,max=100"`
	ApellidosCliente   string     `json:"apellidos_cliente" validate:"required,max=100"`
	DNICliente         string     `json:"dni_cliente" validate:"required,max=20"`
	RUCCliente         *string    `json:"ruc_cliente" validate:"omitempty,max=20"`
	FNacimientoCliente *time.Time `json:"f_nacimiento_cliente"`
	OcupacionCliente   *string    `json:"ocupacion_cliente" validate:"omitempty,max=100"`
	PhoneCliente       string     `json:"phone_cliente" validate:"required,max=20"`
	DireccionCliente   string     `json:"direccion_cliente" validate:"required,max=255"`
	MailCliente        string     `json:"mail_cliente" validate:"required,email,max=100"`

	NombresCopropietario    *string `json:"nombres_copropietario" validate:"omitempty,max=100"`
	ApellidosCopropietario  *string `json:"apellidos_copropietario" validate:"omitempty,max=100"`
	DNICopropietario        *string `json:"dni_copropietario" validate:"omitempty,max=20"`
	PhoneCopropietario      *string `json:"phone_copropietario" validate:"omitempty,max=20"`
	MailCopropietario       *string `json:"mail_copropietario" validate:"omitempty,email,max=100"`
	ParentescoCopropietario *string `json:"parentesco_copropietario" validate:"omitempty,max=100"`

	NombresConyuge *string `json:"nombres_conyuge" validate:"omitempty,max=100"`
	DNIConyuge     *string `json:"dni_conyuge" validate:"omitempty,max=20"`

	MetodoSeparacion models.MetodoSeparacion `json:"metodo_separacion" validate:"required,oneof=Efectivo Depósito Banco"`
	Moneda           models.Moneda           `json:"moneda" validate:"required,oneof=PEN USD"`
	NumeroOperacion  *string                 `json:"numero_operacion" validate:"omitempty,max=50"`
	FechaPlazo       string                  `json:"fecha_plazo" validate:"required,max=50"`
	MontoArras       decimal.Decimal         `json:"monto_arras"`
}

// ToModel copies the request into a new Cliente.
func (r CreateClienteRequest) ToModel() *models.Cliente {
	return &models.Cliente{
		NombresCliente:          r.NombresCliente,
		ApellidosCliente:        r.ApellidosCliente,
		DNICliente:              r.DNICliente,
		RUCCliente:              r.RUCCliente,
		FNacimientoCliente:      r.FNacimientoCliente,
		OcupacionCliente:        r.OcupacionCliente,
		PhoneCliente:            r.PhoneCliente,
		DireccionCliente:        r.DireccionCliente,
		MailCliente:             r.MailCliente,
		NombresCopropietario:    r.NombresCopropietario,
		ApellidosCopropietario:  r.ApellidosCopropietario,
		DNICopropietario:        r.DNICopropietario,
		PhoneCopropietario:      r.PhoneCopropietario,
		MailCopropietario:       r.MailCopropietario,
		ParentescoCopropietario: r.ParentescoCopropietario,
		NombresConyuge:          r.NombresConyuge,
		DNIConyuge:              r.DNIConyuge,
		MetodoSeparacion:        r.MetodoSeparacion,
		Moneda:                  r.Moneda,
		NumeroOperacion:         r.NumeroOperacion,
		FechaPlazo:              r.FechaPlazo,
		MontoArras:              r.MontoArras,
	}
}

// UpdateClienteRequest is a partial update; nil fields are left unchanged.
type UpdateClienteRequest struct {
	NombresCliente   *string `json:"nombres_cliente" validate:"omitempty,min=1,max=100"`
	ApellidosCliente *string `json:"apellidos_cliente" validate:"omitempty,min=1,max=100"`
	PhoneCliente     *string `json:"phone_cliente" validate:"omitempty,min=1,max=20"`
	DireccionCliente *string `json:"direccion_cliente" validate:"omitempty,min=1,max=255"`
	MailCliente      *string `json:"mail_cliente" validate:"omitempty,email,max=100"`
	OcupacionCliente *string `json:"ocupacion_cliente" validate:"omitempty,max=100"`

	NombresConyuge *string `json:"nombres_conyuge" validate:"omitempty,max=100"`
	DNIConyuge     *string `json:"dni_conyuge" validate:"omitempty,max=20"`

	MetodoSeparacion *models.MetodoSeparacion `json:"metodo_separacion" validate:"omitempty,oneof=Efectivo Depósito Banco"`
	Moneda           *models.Moneda           `json:"moneda" validate:"omitempty,oneof=PEN USD"`
	NumeroOperacion  *string                  `json:"numero_operacion" validate:"omitempty,max=50"`
	FechaPlazo       *string                  `json:"fecha_plazo" validate:"omitempty,min=1,max=50"`
	MontoArras       *decimal.Decimal         `json:"monto_arras"`
}

// Apply copies every non-nil field onto c.
func (r UpdateClienteRequest) Apply(c *models.Cliente) {
	setIf(&c.NombresCliente, r.NombresCliente)
	setIf(&c.ApellidosCliente, r.ApellidosCliente)
	setIf(&c.PhoneCliente, r.PhoneCliente)
	setIf(&c.DireccionCliente, r.DireccionCliente)
	setIf(&c.MailCliente, r.MailCliente)
	setIf(&c.FechaPlazo, r.FechaPlazo)
	setIf(&c.MetodoSeparacion, r.MetodoSeparacion)
	setIf(&c.Moneda, r.Moneda)
	setIf(&c.MontoArras, r.MontoArras)
	if r.OcupacionCliente != nil {
		c.OcupacionCliente = r.OcupacionCliente
	}
	if r.NombresConyuge != nil {
		c.NombresConyuge = r.NombresConyuge
	}
	if r.DNIConyuge != nil {
		c.DNIConyuge = r.DNIConyuge
	}
	if r.NumeroOperacion != nil {
		c.NumeroOperacion = r.NumeroOperacion
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// LocalSummary is the local embedded in a cliente response.
type LocalSummary struct {
	ID         int64              `json:"id"`
	ZonaCodigo string             `json:"zona_codigo"`
	Estado     models.EstadoLocal `json:"estado"`
	PrecioBase decimal.Decimal    `json:"precio_base"`
	Tipo       models.TipoLocal   `json:"tipo"`
	Metraje    *MetrajeSummary    `json:"metraje,omitempty"`
}

type ClienteResponse struct {
	*models.Cliente
	Local *LocalSummary `json:"local,omitempty"`
}

func NewClienteResponse(c *models.Cliente, locales []*models.Local) ClienteResponse {
	resp := ClienteResponse{Cliente: c}
	if len(locales) > 0 {
		l := locales[0]
		resp.Local = &LocalSummary{
			ID:         l.ID,
			ZonaCodigo: l.ZoneCode(),
			Estado:     l.Estado,
			PrecioBase: l.PrecioBase,
			Tipo:       l.Tipo,
		}
		if m := l.Metraje; m != nil {
			resp.Local.Metraje = &MetrajeSummary{Area: m.Area, Perimetro: m.Perimetro, Image: m.Image}
		}
	}
	return resp
}
