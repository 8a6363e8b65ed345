// Package export renders purchase records as Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/plazacomercial/locales-service/internal/catalog"
	"github.com/plazacomercial/locales-service/internal/models"
)

const (
	ClientesSheet   = "Clientes"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout      = "2006-01-02"
)

// ClientesHeader is the first row of the export.
var ClientesHeader = []string{
	"ID",
	"Nombres",
	"Apellidos",
	"DNI",
	"RUC",
	"Teléfono",
	"Correo",
	"Dirección",
	"Copropietario",
	"Cónyuge",
	"Método de separación",
	"Moneda",
	"N° de operación",
	"Monto arras",
	"Fecha plazo",
	"Local",
	"Estado local",
	"Precio local",
	"Fecha registro",
}

// ClienteRow pairs a cliente with the local it reserved, if any.
type ClienteRow struct {
	Cliente *models.Cliente
	Local   *models.Local
}

// WriteClientes writes rows as a single-sheet xlsx workbook to w.
func WriteClientes(w io.Writer, rows []ClienteRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ClientesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	header := make([]any, len(ClientesHeader))
	for i, h := range ClientesHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ClientesSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(ClientesHeader))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ClientesSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(ClientesSheet, "A", lastCol, 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := clienteValues(r)
		if err := f.SetSheetRow(ClientesSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func clienteValues(r ClienteRow) []any {
	c := r.Cliente
	vals := []any{
		c.ID,
		c.NombresCliente,
		c.ApellidosCliente,
		c.DNICliente,
		deref(c.RUCCliente),
		c.PhoneCliente,
		c.MailCliente,
		c.DireccionCliente,
		joinName(c.NombresCopropietario, c.ApellidosCopropietario),
		deref(c.NombresConyuge),
		string(c.MetodoSeparacion),
		string(c.Moneda),
		deref(c.NumeroOperacion),
		c.MontoArras.StringFixed(2),
		c.FechaPlazo,
	}
	if l := r.Local; l != nil {
		vals = append(vals, l.ZoneCode(), string(l.Estado), catalog.FormatPrice(l.PrecioBase))
	} else {
		vals = append(vals, "", "", "")
	}
	return append(vals, c.FechaRegistro.Format(dateLayout))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinName(first, last *string) string {
	switch {
	case first == nil && last == nil:
		return ""
	case last == nil:
		return *first
	case first == nil:
		return *last
	}
	return *first + " " + *last
}
