package model

// User is the owning account for every other record. Single-tenant in
// practice but owner identity stays an explicit field everywhere.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}
