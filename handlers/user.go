// user.go - Handles registration, token login and the current user

package handlers

import (
	"net/http"

	"fruitpie-jobboard/domain"
	"fruitpie-jobboard/middleware"
	"fruitpie-jobboard/store"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IsPoster bool   `json:"is_poster"`
	IsSeeker bool   `json:"is_seeker"`
}

// TokenInput is the form body of POST /token.
type TokenInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account and returns its public view.
func (h *Handler) Register(c *gin.Context) {
	// STEP 1: Bind the JSON body
	// Validator output stays in the logs, never in the response
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Malformed JSON or failed binding tag
		respondError(c, domain.NewBadRequestError("Invalid registration data"))
		_ = c.Error(err) // Keep the validator message for the request log
		return
	}

	// STEP 2: Create the account (password rules and uniqueness live in the store)
	user, err := h.Users.Register(c.Request.Context(), store.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		IsPoster: input.IsPoster,
		IsSeeker: input.IsSeeker,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user) // Public view, hash is never serialised
}

// Token exchanges a username and password for a bearer token.
func (h *Handler) Token(c *gin.Context) {
	// STEP 1: Bind the form
	// Missing credentials fail exactly like wrong ones
	var input TokenInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, domain.NewUnauthorizedError("Incorrect username or password")) // 401 + WWW-Authenticate
		return
	}

	// STEP 2: Check the password against the stored hash
	user, err := h.Users.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// STEP 3: Sign a token whose subject is the username
	token, err := h.Tokens.Issue(map[string]any{"sub": user.Username}, 0) // 0 = configured default TTL
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user. It must run behind middleware.RequireUser.
func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, user)
}
