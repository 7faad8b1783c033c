package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fabclean/laundry-api/internal/middleware"
)

// adminActor renders the acting admin id for audit entries.
func adminActor(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextAdminID); ok {
		if id, ok := v.(uint); ok {
			return "admin:" + strconv.FormatUint(uint64(id), 10)
		}
	}
	return "admin"
}
