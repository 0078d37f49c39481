package ipapi

import "fmt"

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ip api status %d: %s", e.Status, e.Body)
}

// LookupError: la API respondió 200 pero con status "fail".
type LookupError struct {
	Query   string
	Message string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ip lookup %s failed: %s", e.Query, e.Message)
}
