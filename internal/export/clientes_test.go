package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/utils"
)

func TestWriteClientes(t *testing.T) {
	rows := []ClienteRow{
		{
			Cliente: &models.Cliente{
				ID:                   7,
				NombresCliente:       "Ana",
				ApellidosCliente:     "Quispe",
				DNICliente:           "12345678",
				PhoneCliente:         "999888777",
				MailCliente:          "ana@example.com",
				DireccionCliente:     "Av. Sol 123",
				NombresCopropietario: utils.Ptr("Luis"),
				MetodoSeparacion:     models.MetodoBanco,
				Moneda:               models.MonedaPEN,
				FechaPlazo:           "30 días",
				MontoArras:           decimal.RequireFromString("1500"),
				FechaRegistro:        time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
			},
			Local: &models.Local{
				Estado:     models.EstadoReservado,
				PrecioBase: decimal.RequireFromString("51990"),
				Zona:       &models.Zona{Codigo: "PT 12"},
			},
		},
		{
			Cliente: &models.Cliente{
				ID:               8,
				NombresCliente:   "Rosa",
				MetodoSeparacion: models.MetodoEfectivo,
				Moneda:           models.MonedaUSD,
				MontoArras:       decimal.Zero,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClientes(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(ClientesSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, ClientesHeader, got[0])

	first := got[1]
	assert.Equal(t, "7", first[0])
	assert.Equal(t, "Ana", first[1])
	assert.Equal(t, "Luis", first[8])
	assert.Equal(t, "Banco", first[10])
	assert.Equal(t, "1500.00", first[13])
	assert.Equal(t, "PT 12", first[15])
	assert.Equal(t, "$51,990", first[17])
	assert.Equal(t, "2024-05-02", first[18])

	second := got[2]
	assert.Equal(t, "Rosa", second[1])
	assert.Equal(t, "", second[15])
}

func TestWriteClientesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteClientes(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(ClientesSheet)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
