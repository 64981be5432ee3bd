package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/Taller-api/pkg/config"
	"github.com/jhoicas/Taller-api/pkg/jwt"
)

// RateLimiter limita mutaciones por identidad con ventana deslizante. La
// clave es el user_id del token cuando hay uno válido (el parse aquí es
// barato y no autentica: de eso se encarga AuthMiddleware más adentro);
// si no, la IP del cliente.
func RateLimiter(cfg config.RateLimitConfig, jwtSecret string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               cfg.Max,
		Expiration:        time.Duration(cfg.WindowMinutes) * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		Next: func(c *fiber.Ctx) bool {
			// Las lecturas y las rutas públicas no consumen cupo.
			if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
				return true
			}
			path := c.Path()
			return strings.HasPrefix(path, "/api/auth") ||
				path == "/health" || path == "/version" ||
				strings.HasPrefix(path, "/docs")
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			if token, ok := bearerToken(c); ok {
				if claims, err := jwt.Parse(jwtSecret, token); err == nil {
					return "user:" + claims.UserID
				}
			}
			return "ip:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return respondError(c, fiber.StatusTooManyRequests, "demasiadas solicitudes, intenta más tarde")
		},
	})
}
