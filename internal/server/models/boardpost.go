package models

import "time"

// BoardPostType classifies a board post.
type BoardPostType string

const (
	BoardPostNotice  BoardPostType = "NOTICE"
	BoardPostQnA     BoardPostType = "QNA"
	BoardPostReview  BoardPostType = "REVIEW"
	BoardPostGeneral BoardPostType = "GENERAL"
)

func (t BoardPostType) Valid() bool {
	switch t {
	case BoardPostNotice, BoardPostQnA, BoardPostReview, BoardPostGeneral:
		return true
	}
	return false
}

// BoardPost is a community board entry. Pinned posts are listed before
// all others.
type BoardPost struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	Type          BoardPostType `json:"type"`
	AuthorID      int64         `json:"authorId"`
	ViewCount     int64         `json:"viewCount"`
	CorporateOnly bool          `json:"corporateOnly"`
	Pinned        bool          `json:"pinned"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// NewBoardPost is the input to boardposts.Repository.Create and Update.
// An empty Type means GENERAL. Update ignores AuthorID.
type NewBoardPost struct {
	Title         string
	Content       string
	Type          BoardPostType
	AuthorID      int64
	CorporateOnly bool
	Pinned        bool
}

// TypeOrDefault resolves the optional post type.
func (n NewBoardPost) TypeOrDefault() BoardPostType {
	if n.Type == "" {
		return BoardPostGeneral
	}
	return n.Type
}
