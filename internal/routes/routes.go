package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/config"
	domainAppointment "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	domainArtist "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	domainClient "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/handlers"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/tattoo-scheduler/internal/usecase/appointment"
	ucArtist "github.com/BruksfildServices01/tattoo-scheduler/internal/usecase/artist"
	ucClient "github.com/BruksfildServices01/tattoo-scheduler/internal/usecase/client"
)

// Deps is everything the router needs. Storage is chosen by the caller.
type Deps struct {
	Clients      domainClient.Repository
	Artists      domainArtist.Repository
	Appointments domainAppointment.Repository

	AuditStore audit.Store
	Audit      *audit.Dispatcher

	// Migrate backs /api/init-db.
	Migrate func() error

	Config *config.Config
	Log    zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
	)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	listClientsUC := ucClient.NewListClients(d.Clients)
	createClientUC := ucClient.NewCreateClient(d.Clients, d.Audit)
	updateClientUC := ucClient.NewUpdateClient(d.Clients, d.Audit)
	deleteClientUC := ucClient.NewDeleteClient(d.Clients, d.Audit)

	listArtistsUC := ucArtist.NewListArtists(d.Artists)
	createArtistUC := ucArtist.NewCreateArtist(d.Artists, d.Audit)
	updateArtistUC := ucArtist.NewUpdateArtist(d.Artists, d.Audit)
	deleteArtistUC := ucArtist.NewDeleteArtist(d.Artists, d.Audit)

	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments)
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Appointments, d.Audit)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(d.Appointments, d.Audit)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(d.Appointments, d.Audit)
	exportReportUC := ucAppointment.NewExportReport(d.Appointments)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		listClientsUC,
		createClientUC,
		updateClientUC,
		deleteClientUC,
		d.Log,
	)

	artistHandler := handlers.NewArtistHandler(
		listArtistsUC,
		createArtistUC,
		updateArtistUC,
		deleteArtistUC,
		d.Log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		exportReportUC,
		d.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore, d.Log)

	migrate := d.Migrate
	if migrate == nil {
		migrate = func() error { return nil }
	}
	systemHandler := handlers.NewSystemHandler(r.Routes, migrate, d.Log)

	jsonBody := middleware.RequireJSON()

	// ======================================================
	// 🔧 OPERATIONAL
	// ======================================================
	r.GET("/", systemHandler.Home)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", systemHandler.Health)

		if !d.Config.IsProduction() {
			api.GET("/debug", systemHandler.Debug)
			api.GET("/init-db", systemHandler.InitDB)
		}

		// ------------------------------
		// CLIENTES
		// ------------------------------
		clientes := api.Group("/clientes")
		{
			clientes.GET("", clientHandler.List)
			clientes.GET("/ping", clientHandler.Ping)
			clientes.POST("", jsonBody, clientHandler.Create)
			clientes.PUT("/:id", jsonBody, clientHandler.Update)
			clientes.DELETE("/:id", clientHandler.Delete)
		}

		// ------------------------------
		// TATUADORES
		// ------------------------------
		tatuadores := api.Group("/tatuadores")
		{
			tatuadores.GET("", artistHandler.List)
			tatuadores.POST("", jsonBody, artistHandler.Create)
			tatuadores.PUT("/:id", jsonBody, artistHandler.Update)
			tatuadores.DELETE("/:id", artistHandler.Delete)
		}

		// ------------------------------
		// CITAS
		// ------------------------------
		citas := api.Group("/citas")
		{
			citas.GET("", appointmentHandler.List)
			citas.GET("/xml", appointmentHandler.ExportXML)
			citas.POST("", jsonBody, appointmentHandler.Create)
			citas.PUT("/:id", jsonBody, appointmentHandler.Update)
			citas.DELETE("/:id", appointmentHandler.Delete)
		}

		api.GET("/auditoria", auditLogsHandler.List)
	}
}
