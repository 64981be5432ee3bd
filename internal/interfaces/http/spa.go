package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RegisterSPA sirve el build del frontend y registra el fallback final:
// cualquier ruta no-API desconocida recibe index.html para que el router del
// cliente resuelva; las rutas /api desconocidas reciben el 404 del sobre.
// Debe registrarse DESPUÉS de las rutas de la API.
func RegisterSPA(app *fiber.App, dir string) {
	index := filepath.Join(dir, "index.html")

	if _, err := os.Stat(dir); err == nil {
		app.Static("/", dir)
	}

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return respondError(c, fiber.StatusNotFound, "ruta no encontrada")
		}
		if _, err := os.Stat(index); err != nil {
			return respondError(c, fiber.StatusNotFound, "ruta no encontrada")
		}
		return c.SendFile(index)
	})
}
