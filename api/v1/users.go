package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPublicProfile returns a user's public profile by username.
// Private profiles and unknown usernames both yield the same 404.
func GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	result, err := profileService.PublicProfile(username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   result,
	})
}
