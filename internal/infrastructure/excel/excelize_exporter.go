package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/timesheet-pro/internal/application/report"
)

const sheetName = "Registros"

var headers = []string{
	"Usuario", "Proyecto", "Actividad", "Inicio", "Fin",
	"Horas", "Facturable", "Aprobada", "Descripción",
}

// ExcelizeEntriesExporter implementa report.EntriesExcelGenerator usando excelize.
type ExcelizeEntriesExporter struct{}

// NewExcelizeEntriesExporter construye el exportador.
func NewExcelizeEntriesExporter() *ExcelizeEntriesExporter { return &ExcelizeEntriesExporter{} }

// GenerateEntriesExcel vuelca las filas a un libro xlsx y devuelve sus bytes.
func (g *ExcelizeEntriesExporter) GenerateEntriesExcel(_ context.Context, rows []report.EntryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	// Eliminar la hoja por defecto para que el libro quede solo con Registros
	_ = f.DeleteSheet("Sheet1")

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado %q: %w", h, err)
		}
	}

	for rowIdx, row := range rows {
		values := []interface{}{
			row.Username,
			row.Project,
			row.Activity,
			row.Start.Format("2006-01-02 15:04"),
			row.End.Format("2006-01-02 15:04"),
			row.Hours,
			boolLabel(row.Billable),
			boolLabel(row.Approved),
			row.Description,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("excel: celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", rowIdx+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func boolLabel(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
