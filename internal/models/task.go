package models

import "time"

const (
	DefaultStatus   = "pending"
	DefaultPriority = "medium"
)

// status и priority — свободный текст, без enum и переходов
type Task struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description" db:"description"`
	Status        string     `json:"status" db:"status"`
	Priority      string     `json:"priority" db:"priority"`
	CreatedAt     *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at" db:"updated_at"`
	CommentsCount int        `json:"comments_count" db:"comments_count"`
}
