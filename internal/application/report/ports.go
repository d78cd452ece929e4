package report

import (
	"context"
	"time"

	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// EntryRow es una fila ya resuelta (nombres en lugar de IDs) lista para
// volcarse a un reporte.
type EntryRow struct {
	Username    string
	Project     string
	Activity    string
	Start       time.Time
	End         time.Time
	Hours       float64
	Billable    bool
	Approved    bool
	Description string
}

// EntriesExcelGenerator puerto de generación del export xlsx de registros.
// Lo implementa infrastructure/excel.
type EntriesExcelGenerator interface {
	GenerateEntriesExcel(ctx context.Context, rows []EntryRow) ([]byte, error)
}

// TeamReportGenerator puerto de generación del reporte PDF de un equipo.
// Lo implementa infrastructure/pdf.
type TeamReportGenerator interface {
	GenerateTeamReport(ctx context.Context, team *entity.Team, lead *entity.User, rows []EntryRow) ([]byte, error)
}
