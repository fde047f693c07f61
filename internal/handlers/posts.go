package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjtaylor123/sunlessCoding/internal/models"
	"github.com/mjtaylor123/sunlessCoding/internal/notify"
	"github.com/mjtaylor123/sunlessCoding/internal/store"
	"github.com/mjtaylor123/sunlessCoding/internal/utils"
)

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreatePostResponse struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostHandler struct {
	Store     store.PostStore
	Publisher notify.Publisher
}

func NewPostHandler(s store.PostStore, publisher notify.Publisher) *PostHandler {
	return &PostHandler{Store: s, Publisher: publisher}
}

func (h *PostHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body CreatePostRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	post := models.Post{
		UserID:  userID,
		Title:   body.Title,
		Content: body.Content,
	}

	if err := h.Store.CreatePost(ctx.Request.Context(), &post); err != nil {
		log.Printf("Error creating post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post"})
		return
	}

	h.publishPostCreated(post)

	ctx.JSON(http.StatusCreated, CreatePostResponse{
		ID:      post.ID,
		UserID:  post.UserID,
		Title:   post.Title,
		Content: post.Content,
	})
}

// publishPostCreated notifies the new_post topic. Failures are logged and
// not surfaced: the post is already committed and the counter is only
// eventually consistent.
func (h *PostHandler) publishPostCreated(post models.Post) {
	payload, err := json.Marshal(notify.PostCreated{
		UserID:  post.UserID,
		PostID:  post.ID,
		Title:   post.Title,
		Content: post.Content,
	})

	if err != nil {
		log.Printf("Failed to encode post-created notification: %v", err)
		return
	}

	if err := h.Publisher.Publish(notify.TopicNewPost, payload); err != nil {
		log.Printf("Failed to publish post-created notification: %v", err)
	}
}

func (h *PostHandler) ListByUser(ctx *gin.Context) {
	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, err := h.Store.ListPostsByUser(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Error getting posts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting posts"})
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// DeleteByUser always reports 204: the delete is best-effort and storage
// failures are logged, not surfaced to the caller.
func (h *PostHandler) DeleteByUser(ctx *gin.Context) {
	userID, err := utils.GetUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.DeletePostsByUser(ctx.Request.Context(), userID); err != nil {
		log.Printf("Error deleting posts by user: %v", err)
	} else {
		log.Println("All posts by the user deleted successfully")
	}

	ctx.Status(http.StatusNoContent)
}
