package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/momenul162/Food-pagol-server/utils"
)

// TokenController issues access tokens
type TokenController struct{}

// NewTokenController creates a new TokenController
func NewTokenController() *TokenController {
	return &TokenController{}
}

// CreateToken signs a 7-day access token for the posted email and returns
// the raw token string
func (tc *TokenController) CreateToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	token, err := utils.GenerateJWT(body.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(token))
}
