package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/auth"
	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/application/usecase"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TenantUC    *usecase.TenantUseCase
	BranchUC    *usecase.BranchUseCase
	UserUC      *usecase.UserUseCase
	OrderUC     *usecase.OrderUseCase
	SupplierUC  *usecase.SupplierUseCase
	InventoryUC *usecase.InventoryUseCase
	PayrollUC   *usecase.PayrollUseCase

	Container  *session.Container
	Store      repository.ContextStore
	Production bool
}

// Router registra las rutas de la API con sus gates de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: el backend central es quien valida credenciales)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Container)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authHandler.Me)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Patch("/change-password", authHandler.ChangePassword)

	// Sesión: la vista es pública (reporta también "no autenticado"); las
	// mutaciones requieren sesión.
	sessionHandler := NewSessionHandler(deps.Container, deps.Store)
	sessionGroup := api.Group("/session")
	sessionGroup.Get("/", sessionHandler.Get)
	sessionGroup.Put("/branch", Guard(deps.Container), sessionHandler.SelectBranch)
	if !deps.Production {
		// El override de rol es una herramienta de desarrollo; en producción
		// las rutas directamente no existen.
		sessionGroup.Put("/dev-role", Guard(deps.Container), sessionHandler.SetDevRole)
		sessionGroup.Delete("/dev-role", Guard(deps.Container), sessionHandler.ClearDevRole)
	}

	enforceBranch := EnforceAssignedBranch(deps.Container, deps.Store)

	// Tenants (plataforma, solo SUPER_ADMIN)
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants := api.Group("/tenants", Guard(deps.Container, entity.RoleSuperAdmin))
	tenants.Get("/", tenantHandler.List)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id", tenantHandler.Update)
	tenants.Delete("/:id", tenantHandler.Delete)

	// Branches: lectura para cualquier sesión (el selector de sucursal la
	// necesita), mutaciones solo administrativas.
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches := api.Group("/branches")
	branches.Get("/", Guard(deps.Container), branchHandler.List)
	branches.Get("/:id", Guard(deps.Container), branchHandler.GetByID)
	adminOnly := Guard(deps.Container, entity.RoleSuperAdmin, entity.RoleAdmin)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Users (administrativo; el recurso de plataforma solo SUPER_ADMIN)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", adminOnly)
	users.Get("/admin", Guard(deps.Container, entity.RoleSuperAdmin), userHandler.ListAdmin)
	users.Post("/admin", Guard(deps.Container, entity.RoleSuperAdmin), userHandler.CreateAdmin)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Orders (operación diaria, cualquier rol con sesión)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders", Guard(deps.Container), enforceBranch)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.SetStatus)

	managerUp := Guard(deps.Container, entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleManager)

	// Suppliers (gestión, MANAGER o superior)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := api.Group("/suppliers", managerUp, enforceBranch)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/prices", supplierHandler.UpsertPrice)
	suppliers.Put("/:id", supplierHandler.Update)

	// Inventory y movimientos (MANAGER o superior)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory := api.Group("/inventory", managerUp, enforceBranch)
	inventory.Get("/", inventoryHandler.Levels)
	inventory.Patch("/adjust", inventoryHandler.Adjust)
	movements := api.Group("/movements", managerUp, enforceBranch)
	movements.Get("/", inventoryHandler.Movements)
	movements.Post("/", inventoryHandler.CreateMovement)

	// Payroll (MANAGER o superior)
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	api.Get("/employees", managerUp, enforceBranch, payrollHandler.Employees)
	api.Get("/employee-shifts", managerUp, enforceBranch, payrollHandler.Shifts)
	api.Get("/payslips", managerUp, enforceBranch, payrollHandler.Payslips)
}
