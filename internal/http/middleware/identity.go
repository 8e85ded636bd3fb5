package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Hashimp6/broperty/internal/model"
)

const (
	// UserIDHeader and UserRoleHeader carry the caller identity asserted by the gateway.
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"

	actorLocalKey = "actor"
)

// Identity stores the gateway-asserted caller in the request locals.
// Requests without X-User-ID get an anonymous actor; handlers that need an
// identity reject it.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := model.Actor{
			ID:   strings.TrimSpace(c.Get(UserIDHeader)),
			Role: model.Role(strings.ToLower(strings.TrimSpace(c.Get(UserRoleHeader)))),
		}
		if actor.ID == "" {
			actor.Role = ""
		}
		c.Locals(actorLocalKey, actor)
		return c.Next()
	}
}

// ActorFrom returns the caller stored by Identity, or the anonymous actor.
func ActorFrom(c *fiber.Ctx) model.Actor {
	if a, ok := c.Locals(actorLocalKey).(model.Actor); ok {
		return a
	}
	return model.Actor{}
}
