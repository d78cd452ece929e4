package report

import (
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// buildRows resuelve IDs a nombres usando los índices dados. Un ID sin
// resolver (registro huérfano) se deja vacío en lugar de abortar el reporte.
func buildRows(
	entries []*entity.TimesheetEntry,
	usersByID map[string]*entity.User,
	projectsByID map[string]*entity.Project,
	activitiesByID map[string]*entity.Activity,
) []EntryRow {
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		row := EntryRow{
			Start:       e.StartTime,
			End:         e.EndTime,
			Hours:       e.DurationHours,
			Billable:    e.IsBillable,
			Approved:    e.IsApproved,
			Description: e.Description,
		}
		if u := usersByID[e.UserID]; u != nil {
			row.Username = u.Username
		}
		if p := projectsByID[e.ProjectID]; p != nil {
			row.Project = p.Name
		}
		if a := activitiesByID[e.ActivityID]; a != nil {
			row.Activity = a.Name
		}
		rows = append(rows, row)
	}
	return rows
}

func indexUsers(users []*entity.User) map[string]*entity.User {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}

func indexProjects(projects []*entity.Project) map[string]*entity.Project {
	m := make(map[string]*entity.Project, len(projects))
	for _, p := range projects {
		m[p.ID] = p
	}
	return m
}

func indexActivities(activities []*entity.Activity) map[string]*entity.Activity {
	m := make(map[string]*entity.Activity, len(activities))
	for _, a := range activities {
		m[a.ID] = a
	}
	return m
}
