// Package reportexport renders a process result as an XLSX workbook for the
// operators fixing the source data.
package reportexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"idsegen/internal/service"
)

const (
	hojaResumen  = "Resumen"
	hojaErrores  = "Errores"
	hojaArchivos = "Archivos"
)

var columnasErrores = []interface{}{
	"Registro Patronal", "Movimiento", "Tipo de Error", "Campo", "Valor", "Mensaje",
}

var columnasArchivos = []interface{}{
	"Archivo", "Tipo", "Periodo", "Registro Patronal", "Movimientos", "Bytes",
}

// WriteXLSX writes the workbook: a summary sheet with the run counts, one
// row per validation failure, and one row per generated file.
func WriteXLSX(res *service.ProcessResult, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", hojaResumen)
	if err := escribirResumen(f, res); err != nil {
		return err
	}
	if err := escribirErrores(f, res); err != nil {
		return err
	}
	if err := escribirArchivos(f, res); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx report: %w", err)
	}
	return nil
}

func escribirResumen(f *excelize.File, res *service.ProcessResult) error {
	filas := [][]interface{}{
		{"Run ID", res.Report.RunID.String()},
		{"Empresas procesadas", res.Report.TotalEmpresas},
		{"Movimientos totales", res.Report.TotalMovimientos},
		{"Movimientos válidos", res.Report.Validos},
		{"Movimientos inválidos", res.Report.Invalidos},
		{"Archivos generados", len(res.Archivos)},
	}
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hojaResumen, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirErrores(f *excelize.File, res *service.ProcessResult) error {
	if _, err := f.NewSheet(hojaErrores); err != nil {
		return err
	}
	if err := f.SetSheetRow(hojaErrores, "A1", &columnasErrores); err != nil {
		return err
	}

	fila := 2
	for _, grupo := range res.Report.Errores {
		for _, e := range grupo.Errores {
			celda, err := excelize.CoordinatesToCellName(1, fila)
			if err != nil {
				return err
			}
			valores := []interface{}{
				grupo.RegistroPatronal, e.MovimientoIdx, string(e.Kind), e.Campo, e.Valor, e.Mensaje,
			}
			if err := f.SetSheetRow(hojaErrores, celda, &valores); err != nil {
				return err
			}
			fila++
		}
	}
	return nil
}

func escribirArchivos(f *excelize.File, res *service.ProcessResult) error {
	if _, err := f.NewSheet(hojaArchivos); err != nil {
		return err
	}
	if err := f.SetSheetRow(hojaArchivos, "A1", &columnasArchivos); err != nil {
		return err
	}

	for i, a := range res.Archivos {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		valores := []interface{}{
			a.Nombre, string(a.Tipo), a.Periodo, a.RegistroPatronal, a.Movimientos, a.Bytes,
		}
		if err := f.SetSheetRow(hojaArchivos, celda, &valores); err != nil {
			return err
		}
	}
	return nil
}
