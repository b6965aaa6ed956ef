package news

import "errors"

var (
	// ErrCategoryNotFound is returned when no category has the requested ID
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNewsNotFound is returned when no article has the requested slug
	ErrNewsNotFound = errors.New("news not found")
)
