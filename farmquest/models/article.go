package models

import "time"

// Article is static learning content. Bookmark state is a per-user relation
// (User.BookmarkedArticles); the article itself only carries a like counter.
type Article struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Excerpt       string          `json:"excerpt"`
	Content       string          `json:"content"`
	Category      string          `json:"category"`
	Author        string          `json:"author"`
	PublishedDate time.Time       `json:"published_date"`
	ReadTime      int             `json:"read_time"` // minutes
	Difficulty    ExperienceLevel `json:"difficulty"`
	Image         string          `json:"image,omitempty"`
	Tags          []string        `json:"tags"`
	Likes         int             `json:"likes"`
}

func (a Article) Clone() Article {
	c := a
	c.Tags = append([]string(nil), a.Tags...)
	return c
}
