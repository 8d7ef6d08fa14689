package models

import (
	"time"
)

type Author struct {
	AuthorID     string    `json:"_id" db:"author_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"_id" db:"post_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	AuthorID  string    `json:"author" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PostAuthor is the part of an Author exposed on a post read.
type PostAuthor struct {
	AuthorID string `json:"_id" db:"author_id"`
	Name     string `json:"name" db:"name"`
}

// PostWithAuthor is a Post whose author reference is resolved to the author's name.
type PostWithAuthor struct {
	PostID    string     `json:"_id" db:"post_id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Author    PostAuthor `json:"author" db:"author"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
