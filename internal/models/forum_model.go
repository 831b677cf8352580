// Package models contains the models for the Aethelgard Community API
package models

import "time"

// ForumFileName is the name of the forum collection document
const ForumFileName = "forum"

// PolicyThreadID is the stable id of the seeded community policy thread
const PolicyThreadID = "policy"

// ForumThread represents a forum discussion thread with its replies
type ForumThread struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	AuthorID   string       `json:"authorId"`
	AuthorName string       `json:"authorName"`
	CreatedAt  time.Time    `json:"createdAt"`
	Replies    []ForumReply `json:"replies"`
}

// ForumReply represents a single reply appended to a thread
type ForumReply struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ForumDocument is the top-level shape of the forum collection
type ForumDocument struct {
	Threads []ForumThread `json:"threads"`
}

// ThreadSummary is the listing projection of a thread. The reply count is
// recomputed from the reply sequence, never stored.
type ThreadSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	Replies    int       `json:"replies"`
}

// Summary returns the listing projection of the thread
func (t *ForumThread) Summary() ThreadSummary {
	return ThreadSummary{
		ID:         t.ID,
		Title:      t.Title,
		AuthorName: t.AuthorName,
		CreatedAt:  t.CreatedAt,
		Replies:    len(t.Replies),
	}
}
