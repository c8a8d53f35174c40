package handler

import "github.com/gin-gonic/gin"

// sendError writes the error envelope every route shares. Clients
// branch on the success flag, not the HTTP status alone.
func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
