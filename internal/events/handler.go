package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===========================
// 🎪 Event Listing - GET /api/events
func ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"events":     Catalog,
		"pass_types": PassTypes,
	})
}

// ===========================
// 🎪 Single Event - GET /api/events/:id
func GetEvent(c *gin.Context) {
	ev := FindEvent(c.Param("id"))
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": ev})
}
