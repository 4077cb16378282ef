package models

// User is the minimal session identity. It exists only for the lifetime of
// the session and is never persisted.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin"`
}
