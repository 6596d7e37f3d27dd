package serverutils

import (
	"time"

	"housing-empire-ai/internal/service"
	"housing-empire-ai/pkg/store"

	"github.com/gofiber/fiber/v2"
)

const sessionLocalKey = "session"

type SessionCookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// SessionMiddleware resolves the browser's session from its cookie, starting
// a new one when the cookie is missing or expired, and stores it in Locals.
func SessionMiddleware(sessions service.ISessionService, cfg SessionCookieConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Cookies(cfg.Name)
		sess := sessions.Resolve(id)

		if sess.ID != id {
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.Name,
				Value:    sess.ID,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HTTPOnly: true,
				Secure:   cfg.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		ctx.Locals(sessionLocalKey, sess)
		return ctx.Next()
	}
}

// CurrentSession returns the session SessionMiddleware attached to ctx.
func CurrentSession(ctx *fiber.Ctx) *store.Session {
	sess, _ := ctx.Locals(sessionLocalKey).(*store.Session)
	return sess
}
