// handler.go - Shared handler dependencies and error responses

package handlers

import (
	"errors"
	"net/http"

	"fruitpie-jobboard/auth"
	"fruitpie-jobboard/domain"
	"fruitpie-jobboard/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler groups everything the HTTP handlers need.
type Handler struct {
	DB     *gorm.DB
	Users  *store.UserStore
	Jobs   *store.JobStore
	Tokens *auth.TokenManager
}

func NewHandler(db *gorm.DB, tokens *auth.TokenManager) *Handler {
	return &Handler{
		DB:     db,
		Users:  store.NewUserStore(db),
		Jobs:   store.NewJobStore(db),
		Tokens: tokens,
	}
}

// respondError writes {"detail": ...} with the status carried by an
// AppError. Anything else is a 500 whose cause is only logged.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == http.StatusUnauthorized {
			c.Header("WWW-Authenticate", "Bearer")
		}
		c.JSON(appErr.Code, gin.H{"detail": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
