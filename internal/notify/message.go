package notify

// TopicNewPost is the broker topic carrying post-created notifications.
const TopicNewPost = "new_post"

// PostCreated is the wire message published after a successful post insert.
type PostCreated struct {
	UserID  uint   `json:"userId"`
	PostID  uint   `json:"postId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
