package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjtaylor123/sunlessCoding/internal/models"
	"github.com/mjtaylor123/sunlessCoding/internal/store"
	"github.com/mjtaylor123/sunlessCoding/internal/utils"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateUserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserHandler struct {
	Store store.UserStore
}

func NewUserHandler(s store.UserStore) *UserHandler {
	return &UserHandler{Store: s}
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := models.User{
		Username: body.Username,
		Email:    body.Email,
	}

	if err := h.Store.CreateUser(ctx.Request.Context(), &user); err != nil {
		log.Printf("Error creating user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	ctx.JSON(http.StatusCreated, CreateUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.Store.ListUsers(ctx.Request.Context())

	if err != nil {
		log.Printf("Error getting users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting users"})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.GetUser(ctx.Request.Context(), userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Error getting user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting user"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = h.Store.UpdateUser(ctx.Request.Context(), userID, body.Username, body.Email, body.Password)

	if err != nil {
		log.Printf("Error updating user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}

	ctx.JSON(http.StatusOK, UpdateUserResponse{
		ID:       userID,
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
}
