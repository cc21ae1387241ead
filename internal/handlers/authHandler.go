package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajinkya1806/Data-Diggers/internal/api"
	"github.com/ajinkya1806/Data-Diggers/internal/auth"
	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/userModel"
)

// SignupHandler godoc
// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      api.SignupRequest  true  "Full name, username and password"
// @Success      201  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse  "Missing fields"
// @Failure      409  {object}  api.ErrorResponse  "Username taken"
// @Router       /auth/signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var requestData api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil ||
		requestData.FullName == "" || requestData.Username == "" || requestData.Password == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Name, Username and Password are required")
		return
	}

	hash, err := auth.HashPassword(requestData.Password)
	if err != nil {
		logAH.Error("Password hashing failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	err = handlerInstance.userStore.SaveUser(r.Context(), userModel.User{
		FullName:     requestData.FullName,
		Username:     requestData.Username,
		PasswordHash: hash,
	})
	if errors.Is(err, userModel.ErrUserExists) {
		WriteErrorResponse(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		logAH.Error("Saving user failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logAH.Info("Registered new user", "username", requestData.Username)
	writeJsonResponse(w, http.StatusCreated, api.MessageResponse{Message: "User registered successfully"})
}

// SigninHandler godoc
// @Summary      Sign in and receive a JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      api.SigninRequest  true  "Username and password"
// @Success      200  {object}  api.AuthResponse
// @Failure      401  {object}  api.ErrorResponse  "Invalid credentials"
// @Router       /auth/signin [post]
func SigninHandler(w http.ResponseWriter, r *http.Request) {
	var requestData api.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil ||
		requestData.Username == "" || requestData.Password == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Username and Password are required")
		return
	}

	user, found, err := handlerInstance.userStore.GetUser(r.Context(), requestData.Username)
	if err != nil {
		logAH.Error("User lookup failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !found || !auth.CheckPassword(user.PasswordHash, requestData.Password) {
		WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := handlerInstance.jwtService.GenerateAccessToken(user.Username, config.TokenTTL)
	if err != nil {
		logAH.Error("Token generation failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.AuthResponse{Message: "Login successful", Token: token})
}

// ProfileHandler godoc
// @Summary      Get the signed-in user's profile
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  api.ProfileResponse
// @Failure      404  {object}  api.ErrorResponse  "User not found"
// @Security     BearerAuth
// @Router       /auth/profile [get]
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	username := identityFromContext(r.Context())
	if username == "" {
		WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, found, err := handlerInstance.userStore.GetUser(r.Context(), username)
	if err != nil {
		logAH.Error("User lookup failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.ProfileResponse{FullName: user.FullName, Username: user.Username})
}
