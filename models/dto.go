package models

type RegisterRequest struct {
	User NewUser `json:"user" validate:"required"`
}

type NewUser struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	User LoginUser `json:"user" validate:"required"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries optional fields only; nil means "leave as is".
type UpdateUserRequest struct {
	User UserPatch `json:"user" validate:"required"`
}

type UserPatch struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

type CreateArticleRequest struct {
	Article NewArticle `json:"article" validate:"required"`
}

type NewArticle struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description"`
	Body        string   `json:"body" validate:"required"`
	TagList     []string `json:"tagList"`
}

// UpdateArticleRequest enumerates the updatable fields explicitly; the slug
// is regenerated only when Title is present.
type UpdateArticleRequest struct {
	Article ArticlePatch `json:"article" validate:"required"`
}

type ArticlePatch struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	Body        *string   `json:"body"`
	TagList     *[]string `json:"tagList"`
}

type ArticleListParams struct {
	Tag       string `form:"tag"`
	Author    string `form:"author"`
	Favorited string `form:"favorited"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

type FeedParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
