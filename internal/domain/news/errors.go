package news

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrInvalidCover    = errors.New("cover must be an image")
)
