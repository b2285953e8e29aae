package domain

import "errors"

var ErrIdeaNotFound = errors.New("project idea not found")
