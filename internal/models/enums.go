package models

import "slices"

// LineaBase is the frontage tier of a zone.
type LineaBase string

const (
	LineaBasePrimera LineaBase = "Primera Línea"
	LineaBaseSegunda LineaBase = "Segunda Línea"
	LineaBaseTercera LineaBase = "Tercera Línea"
)

type EstadoLocal string

const (
	EstadoDisponible EstadoLocal = "Disponible"
	EstadoReservado  EstadoLocal = "Reservado"
	EstadoVendido    EstadoLocal = "Vendido"
)

type MetodoSeparacion string

const (
	MetodoEfectivo MetodoSeparacion = "Efectivo"
	MetodoDeposito MetodoSeparacion = "Depósito"
	MetodoBanco    MetodoSeparacion = "Banco"
)

type Moneda string

const (
	MonedaPEN Moneda = "PEN"
	MonedaUSD Moneda = "USD"
)

// TipoLocal names the entrance group a unit is sold under. The values
// double as the display group titles of the catalog layout.
type TipoLocal string

const (
	TipoSecundariaG1Izquierda TipoLocal = "Entrada secundaria grupo 1 izquierda"
	TipoSecundariaG1Derecha   TipoLocal = "Entrada secundaria grupo 1 derecha"
	TipoSecundariaG2Izquierda TipoLocal = "Entrada secundaria grupo 2 izquierda"
	TipoSecundariaG2Derecha   TipoLocal = "Entrada secundaria grupo 2 derecha"
	TipoSecundariaG3Izquierda TipoLocal = "Entrada secundaria grupo 3 izquierda"
	TipoSecundariaG3Derecha   TipoLocal = "Entrada secundaria grupo 3 derecha"
	TipoSecundariaG4Izquierda TipoLocal = "Entrada secundaria grupo 4 izquierda"
	TipoSecundariaG4Derecha   TipoLocal = "Entrada secundaria grupo 4 derecha"
	TipoSecundariaG5Izquierda TipoLocal = "Entrada secundaria grupo 5 izquierda"
	TipoSecundariaG5Derecha   TipoLocal = "Entrada secundaria grupo 5 derecha"
	TipoGrupo1Larga           TipoLocal = "Entrada grupo 1 larga"
	TipoGrupo2Larga           TipoLocal = "Entrada grupo 2 larga"
)

// AllTiposLocal lists every TipoLocal in display order.
var AllTiposLocal = []TipoLocal{
	TipoSecundariaG1Izquierda, TipoSecundariaG1Derecha,
	TipoSecundariaG2Izquierda, TipoSecundariaG2Derecha,
	TipoSecundariaG3Izquierda, TipoSecundariaG3Derecha,
	TipoSecundariaG4Izquierda, TipoSecundariaG4Derecha,
	TipoSecundariaG5Izquierda, TipoSecundariaG5Derecha,
	TipoGrupo1Larga, TipoGrupo2Larga,
}

// Valid reports whether t is one of AllTiposLocal.
func (t TipoLocal) Valid() bool {
	return slices.Contains(AllTiposLocal, t)
}

type Role string

const (
	RoleMarketing Role = "marketing"
	RoleAsesor    Role = "asesor"
	RoleStaff     Role = "staff"
	RoleCliente   Role = "cliente"
)
