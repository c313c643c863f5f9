package model

// Notification adalah pemberitahuan milik server (status baca ikut server).
type Notification struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	RelatedType string `json:"related_type"`
	RelatedID   int64  `json:"related_id"`
	CreatedAt   string `json:"created_at"`
}
