package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/timesheet-pro/internal/application/auth"
	"github.com/tu-usuario/timesheet-pro/internal/application/report"
	"github.com/tu-usuario/timesheet-pro/internal/application/timesheet"
	"github.com/tu-usuario/timesheet-pro/internal/application/usecase"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	ProjectUC   *usecase.ProjectUseCase
	ActivityUC  *usecase.ActivityUseCase
	EntryUC     *timesheet.EntryUseCase
	UserUC      *usecase.UserAdminUseCase
	TeamUC      *usecase.TeamUseCase
	DashboardUC *usecase.DashboardUseCase
	ExportUC    *report.ExportUseCase
	TeamReport  *report.TeamReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la aplicación. Toda ruta más allá de las
// públicas pasa por AuthMiddleware y después por el guard de rol que le
// corresponde; ningún handler vuelve a chequear el rol por su cuenta.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	projectHandler := NewProjectHandler(deps.ProjectUC)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	entryHandler := NewEntryHandler(deps.EntryUC)
	userHandler := NewUserHandler(deps.UserUC)
	teamHandler := NewTeamHandler(deps.TeamUC, deps.EntryUC)
	reportHandler := NewReportHandler(deps.ExportUC, deps.TeamReport)

	// Público
	app.Get("/", authHandler.Index)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Autenticado, cualquier rol
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/logout", authHandler.Logout)
	protected.Get("/home", authHandler.Home)

	// Guards por rol
	adminOnly := RequireRole(entity.RoleAdmin)
	leadOnly := RequireRole(entity.RoleTeamLead)
	userOnly := RequireRole(entity.RoleUser)
	adminOrLead := RequireRole(entity.RoleAdmin, entity.RoleTeamLead)

	// Dashboards
	protected.Get("/admin", adminOnly, dashboardHandler.Admin)
	protected.Get("/lead", leadOnly, dashboardHandler.Lead)
	protected.Get("/dashboard", userOnly, dashboardHandler.User)

	// Catálogo cliente → proyecto → actividad (admin)
	customers := protected.Group("/customers", adminOnly)
	customers.Get("/", customerHandler.List)
	customers.Get("/new", customerHandler.NewForm)
	customers.Post("/new", customerHandler.Create)

	projects := protected.Group("/projects", adminOnly)
	projects.Get("/", projectHandler.List)
	projects.Get("/new", projectHandler.NewForm)
	projects.Post("/new", projectHandler.Create)

	activities := protected.Group("/activities", adminOnly)
	activities.Get("/", activityHandler.List)
	activities.Get("/new", activityHandler.NewForm)
	activities.Post("/new", activityHandler.Create)

	// Registros de horas. Las rutas fijas van antes que /:id/approve para
	// que el router no las capture como id.
	entries := protected.Group("/entries")
	entries.Get("/pending", leadOnly, entryHandler.Pending)
	entries.Get("/all", adminOnly, entryHandler.All)
	entries.Get("/all_lead", leadOnly, entryHandler.AllLead)
	entries.Get("/export", adminOnly, reportHandler.ExportEntries)
	entries.Get("/new", userOnly, entryHandler.NewForm)
	entries.Post("/new", userOnly, entryHandler.Create)
	entries.Get("/", userOnly, entryHandler.List)
	entries.Post("/:id/approve", leadOnly, entryHandler.Approve)

	// Usuarios (admin)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Get("/new", userHandler.NewForm)
	users.Post("/new", userHandler.Create)
	users.Post("/:id/approve", userHandler.Approve)

	// Equipos: CRUD para el admin; membresía y reporte también para el lead
	// del equipo (el caso de uso verifica que sea el lead de ESE equipo).
	teams := protected.Group("/teams")
	teams.Get("/", adminOnly, teamHandler.List)
	teams.Get("/new", adminOnly, teamHandler.NewForm)
	teams.Post("/new", adminOnly, teamHandler.Create)
	teams.Post("/:id/delete", adminOnly, teamHandler.Delete)
	teams.Get("/:id/members", adminOrLead, teamHandler.Members)
	teams.Post("/:id/members/add", adminOnly, teamHandler.AddMember)
	teams.Post("/:id/members/remove", adminOnly, teamHandler.RemoveMember)
	teams.Get("/:id/entries", leadOnly, teamHandler.Entries)
	teams.Get("/:id/report", adminOrLead, reportHandler.TeamReport)
}
