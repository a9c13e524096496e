package handlers

import "github.com/gin-gonic/gin"

// currentUserID returns the authenticated viewer id, or 0 for anonymous
// requests on optional-auth routes.
func currentUserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		return v.(uint)
	}
	return 0
}
