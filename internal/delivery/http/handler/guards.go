package handler

import "github.com/gofiber/fiber/v3"

// Guards are the route middlewares handlers attach per endpoint. Seeker and
// Poster authenticate as well as check the role.
type Guards struct {
	Auth   fiber.Handler
	Seeker fiber.Handler
	Poster fiber.Handler
}
