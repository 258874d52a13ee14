package middleware

import (
	"github.com/wb-go/wbf/ginext"
)

// ActorHeader names the authenticated principal, verified by the
// gateway in front of this service.
const ActorHeader = "X-Actor-ID"

const actorKey = "actor_id"

func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if actor := c.GetHeader(ActorHeader); actor != "" {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated principal for the request, or
// an empty string when none was supplied.
func ActorFrom(c *ginext.Context) string {
	return c.GetString(actorKey)
}
