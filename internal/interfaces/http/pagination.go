package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// pageFromQuery lee la ventana de paginación del query string y la devuelve
// normalizada, junto con su forma de puerto para el caso de uso.
func pageFromQuery(c *fiber.Ctx) (dto.PageRequest, repository.Page) {
	var pr dto.PageRequest
	_ = c.QueryParser(&pr)
	pr.DefaultPage()
	return pr, repository.Page{Limit: pr.Limit, Offset: pr.Offset}
}
