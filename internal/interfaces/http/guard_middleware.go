package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// GuardState resultado de evaluar el guard de acceso.
type GuardState uint8

const (
	GuardLoading GuardState = iota
	GuardUnauthenticated
	GuardForbidden
	GuardAuthorized
)

// Locals keys expuestas por el guard.
const (
	LocalRole   = "effective_role"
	LocalBranch = "active_branch"
)

// EvaluateGuard decide el estado de acceso para un conjunto de roles
// permitidos (vacío = basta estar autenticado). La decisión usa siempre el rol
// efectivo derivado, nunca el snapshot de usuario crudo.
func EvaluateGuard(container *session.Container, roles ...entity.Role) (GuardState, entity.Role) {
	if container.Loading() {
		return GuardLoading, ""
	}
	snap := container.Snapshot()
	if snap.Anonymous() {
		return GuardUnauthenticated, ""
	}
	role := container.EffectiveRole()
	if len(roles) == 0 {
		return GuardAuthorized, role
	}
	for _, allowed := range roles {
		if role == allowed {
			return GuardAuthorized, role
		}
	}
	return GuardForbidden, role
}

// Guard middleware de acceso por rol. Nunca degrada silenciosamente: con la
// resolución de sesión en vuelo responde 503 para que el caller reintente,
// jamás un falso 401/403.
func Guard(container *session.Container, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, role := EvaluateGuard(container, roles...)
		switch state {
		case GuardLoading:
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_LOADING", Message: "resolución de sesión en curso, reintente"})
		case GuardUnauthenticated:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "no hay sesión activa"})
		case GuardForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol vigente no tiene acceso a este recurso"})
		}
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// EnforceAssignedBranch clava a los roles no administrativos a su sucursal
// asignada: si la sucursal activa difiere (incluido el centinela "todas"), se
// corrige en el store y el contenedor antes de seguir. Los roles
// administrativos pasan sin tocar.
func EnforceAssignedBranch(container *session.Container, store repository.ContextStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := container.EffectiveRole()
		snap := container.Snapshot()
		if role.IsAdminLike() || snap.User == nil {
			c.Locals(LocalBranch, snap.Branch)
			return c.Next()
		}
		assigned := snap.User.Branch.Concrete()
		if !assigned.IsUnset() && snap.Branch != assigned {
			store.Set(repository.FieldBranch, assigned.Storage())
			container.Patch(session.Patch{Branch: session.BranchPtr(assigned)})
			snap.Branch = assigned
		}
		c.Locals(LocalBranch, snap.Branch)
		return c.Next()
	}
}

// EffectiveRoleFromCtx devuelve el rol efectivo fijado por el guard.
func EffectiveRoleFromCtx(c *fiber.Ctx) entity.Role {
	if v, ok := c.Locals(LocalRole).(entity.Role); ok {
		return v
	}
	return ""
}
