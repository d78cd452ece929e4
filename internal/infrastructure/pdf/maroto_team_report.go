// Package pdf implementa el reporte de horas de un equipo, el documento que
// el lead presenta como cierre para facturación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del equipo  │  Lead + Fecha de emisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Usuario | Proyecto | Actividad | Inicio | Horas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Horas registradas / Horas facturables              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/timesheet-pro/internal/application/report"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoTeamReportGenerator implementa report.TeamReportGenerator usando Maroto v2.
type MarotoTeamReportGenerator struct{}

// NewMarotoTeamReportGenerator construye el generador.
func NewMarotoTeamReportGenerator() *MarotoTeamReportGenerator { return &MarotoTeamReportGenerator{} }

// GenerateTeamReport genera el PDF y devuelve sus bytes.
func (g *MarotoTeamReportGenerator) GenerateTeamReport(
	_ context.Context,
	team *entity.Team,
	lead *entity.User,
	rows []report.EntryRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de horas del equipo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(team, lead))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del equipo (izq) y lead + fecha de emisión (der).
func headerRow(team *entity.Team, lead *entity.User) core.Row {
	leadName := "—"
	if lead != nil {
		leadName = lead.Username
	}
	emitted := time.Now().Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE HORAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(team.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("Lead: "+leadName, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Fecha: "+emitted, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de registros.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Usuario", 2, align.Left),
		h("Proyecto", 3, align.Left),
		h("Actividad", 3, align.Left),
		h("Inicio", 2, align.Center),
		h("Horas", 1, align.Right),
		h("Aprob.", 1, align.Center),
	)
}

// tableDetailRows: una fila por registro de horas.
func tableDetailRows(rows []report.EntryRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		approved := "No"
		if r.Approved {
			approved = "Sí"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Username,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				r.Project,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				r.Activity,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.Start.Format("02/01 15:04"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%.2f", r.Hours),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				approved,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(rows []report.EntryRow) core.Row {
	var total, billable float64
	for _, r := range rows {
		total += r.Hours
		if r.Billable {
			billable += r.Hours
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}

	return row.New(18).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(
			label("Horas registradas:"),
			grandLabel("Horas facturables:"),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%.2f", total), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New(fmt.Sprintf("%.2f", billable), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1,
			}),
		),
	)
}
