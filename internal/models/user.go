package models

// User is an account record. Password holds a bcrypt hash, never the
// plaintext; hashing happens inside the store's CreateUser.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type InsertUser struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}
