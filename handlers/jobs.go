// jobs.go - Job board page and listing endpoints

package handlers

import (
	"net/http"

	"fruitpie-jobboard/database"
	"fruitpie-jobboard/middleware"
	"fruitpie-jobboard/models"

	"github.com/gin-gonic/gin"
)

// Index renders the board. A valid bearer token renders the signed-in
// header; otherwise the board is blurred behind the login prompt and
// app.js takes over with the token from localStorage.
func (h *Handler) Index(c *gin.Context) {
	// STEP 1: Load postings, newest first
	jobs, err := h.Jobs.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// STEP 2: Render (User is nil for anonymous and invalid tokens)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Jobs": jobs,
		"User": middleware.CurrentUser(c), // Set by OptionalUser
	})
}

// ListJobs returns every posting as JSON, newest first.
func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.JobPost{} // [] rather than null
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.DB); err != nil { // Round trip to the database
		_ = c.Error(err) // Logged by RequestLogger
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
