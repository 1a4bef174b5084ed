package domain

type User struct {
	Meta
	Email string `json:"email"`
	Name  string `json:"name"`
	// Hash must round-trip through the storage slot; handlers clear it
	// before a User goes out on the wire.
	Hash string `json:"hash,omitempty"`
	Role  string `json:"role"` // USER | ADMIN
}
