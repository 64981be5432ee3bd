package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/auth"
	"github.com/jhoicas/Taller-api/internal/application/report"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CarUC         *usecase.CarUseCase
	AppointmentUC *usecase.AppointmentUseCase
	JobUC         *usecase.JobUseCase
	InventoryUC   *usecase.InventoryUseCase
	MechanicUC    *usecase.MechanicUseCase
	PaymentUC     *usecase.PaymentUseCase
	ReportUC      *report.ReportUseCase
	JWTSecret     string
	Log           *logger.Logger
	Version       string
}

// Conjuntos de roles por ruta. staff = owner + receptionist.
var (
	ownerOnly = []string{entity.RoleOwner}
	staff     = []string{entity.RoleOwner, entity.RoleReceptionist}
	workshop  = []string{entity.RoleOwner, entity.RoleReceptionist, entity.RoleMechanic}
	anyRole   = []string{entity.RoleOwner, entity.RoleReceptionist, entity.RoleMechanic, entity.RoleCustomer}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Públicas
	app.Get("/health", func(c *fiber.Ctx) error {
		return respondMessage(c, "ok")
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return respondOK(c, fiber.Map{"version": deps.Version})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users: administración solo del owner; lectura también receptionist.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole(ownerOnly...), userHandler.Create)
	users.Get("/", RequireRole(staff...), userHandler.List)
	users.Get("/:id", RequireRole(staff...), userHandler.GetByID)
	users.Put("/:id", RequireRole(ownerOnly...), userHandler.Update)
	users.Delete("/:id", RequireRole(ownerOnly...), userHandler.Delete)

	// Cars: escritura staff, lectura cualquier rol autenticado.
	cars := protected.Group("/cars")
	carHandler := NewCarHandler(deps.CarUC)
	cars.Post("/", RequireRole(staff...), carHandler.Create)
	cars.Get("/", RequireRole(anyRole...), carHandler.List)
	cars.Get("/:id", RequireRole(anyRole...), carHandler.GetByID)
	cars.Put("/:id", RequireRole(staff...), carHandler.Update)
	cars.Delete("/:id", RequireRole(staff...), carHandler.Delete)

	// Appointments: escritura staff, lectura cualquier rol autenticado.
	appts := protected.Group("/appointments")
	apptHandler := NewAppointmentHandler(deps.AppointmentUC)
	appts.Post("/", RequireRole(staff...), apptHandler.Create)
	appts.Get("/", RequireRole(anyRole...), apptHandler.List)
	appts.Get("/:id", RequireRole(anyRole...), apptHandler.GetByID)
	appts.Put("/:id", RequireRole(staff...), apptHandler.Update)
	appts.Delete("/:id", RequireRole(staff...), apptHandler.Delete)

	// Jobs: creación/borrado staff, actualización también mechanic; el
	// listado con rol customer llega scoped desde el use case.
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Post("/", RequireRole(staff...), jobHandler.Create)
	jobs.Get("/", RequireRole(anyRole...), jobHandler.List)
	jobs.Get("/:id", RequireRole(anyRole...), jobHandler.GetByID)
	jobs.Put("/:id", RequireRole(workshop...), jobHandler.Update)
	jobs.Delete("/:id", RequireRole(staff...), jobHandler.Delete)

	// Inventory: lectura y descuentos para el taller completo; altas y
	// ediciones staff; borrado solo owner.
	inv := protected.Group("/inventory")
	invHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/analytics", RequireRole(workshop...), invHandler.Analytics)
	inv.Get("/reorder-suggestions", RequireRole(workshop...), invHandler.ReorderSuggestions)
	inv.Post("/bulk-reduce", RequireRole(workshop...), invHandler.BulkReduceStock)
	inv.Post("/", RequireRole(staff...), invHandler.Create)
	inv.Get("/", RequireRole(workshop...), invHandler.List)
	inv.Get("/:id", RequireRole(workshop...), invHandler.GetByID)
	inv.Put("/:id", RequireRole(staff...), invHandler.Update)
	inv.Delete("/:id", RequireRole(ownerOnly...), invHandler.Delete)
	inv.Post("/:id/reduce-stock", RequireRole(workshop...), invHandler.ReduceStock)

	// Mechanics: escritura owner, lectura staff.
	mechanics := protected.Group("/mechanics")
	mechanicHandler := NewMechanicHandler(deps.MechanicUC)
	mechanics.Post("/", RequireRole(ownerOnly...), mechanicHandler.Create)
	mechanics.Get("/", RequireRole(staff...), mechanicHandler.List)
	mechanics.Get("/:id", RequireRole(staff...), mechanicHandler.GetByID)
	mechanics.Put("/:id", RequireRole(ownerOnly...), mechanicHandler.Update)
	mechanics.Delete("/:id", RequireRole(ownerOnly...), mechanicHandler.Delete)

	// Payments: escritura staff, lectura cualquier rol autenticado.
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", RequireRole(staff...), paymentHandler.Create)
	payments.Get("/", RequireRole(anyRole...), paymentHandler.List)
	payments.Get("/:id", RequireRole(anyRole...), paymentHandler.GetByID)
	payments.Put("/:id", RequireRole(staff...), paymentHandler.Update)
	payments.Delete("/:id", RequireRole(staff...), paymentHandler.Delete)

	// Reports PDF: staff.
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/:entity", RequireRole(staff...), reportHandler.Generate)
}
