package gemimi

import (
	"errors"
	"fmt"
)

var ErrEmptyAnswer = errors.New("gemimi: empty answer")

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemimi api status %d: %s", e.Status, e.Body)
}
