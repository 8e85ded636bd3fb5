package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Recover turns a panicking handler into a 500 and logs the panic with its stack.
func Recover(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Locals(RequestIDLocalKey).(string)
				log.Error("panic recovered",
					zap.Any("error", r),
					zap.String("request_id", rid),
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.ByteString("stack", debug.Stack()),
				)
				err = fiber.NewError(fiber.StatusInternalServerError, fmt.Sprint(r))
			}
		}()
		return c.Next()
	}
}
