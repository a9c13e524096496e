package models

import "time"

// Public view types. Internal records are never serialized directly to API
// consumers; services project them into these at the boundary so sensitive
// fields (password hash, email on profiles) stay internal.

type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type ProfileResponse struct {
	Profile Profile `json:"profile"`
}

type ArticleView struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

type ArticleResponse struct {
	Article ArticleView `json:"article"`
}

type ArticlesResponse struct {
	Articles      []ArticleView `json:"articles"`
	ArticlesCount int64         `json:"articlesCount"`
}

type UserView struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type UserResponse struct {
	User UserView `json:"user"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}
