package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the header carrying the ray ID on responses.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber.Ctx locals key the ray ID is stored under.
	LocalsKey = "ray_id"
)

// New returns middleware that tags every request with a ray ID. An
// incoming X-Ray-ID header is honored so IDs survive proxy hops;
// otherwise a fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
