package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/services"
)

var sessionService = services.NewSessionService()

// AddSession records a work session; the project's total time updates with it
func AddSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	session, err := sessionService.AddSession(projectID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   session,
	})
}

// ListSessions returns all work sessions for a project, newest first
func ListSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("id")
	sessions, err := sessionService.ListSessions(projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   sessions,
	})
}
