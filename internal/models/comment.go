package models

import "time"

type Comment struct {
	ID        int64      `json:"id" db:"id"`
	Content   string     `json:"content" db:"content"`
	TaskID    int64      `json:"task_id" db:"task_id"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}
