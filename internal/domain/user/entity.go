package user

// User represents a user record in the system.
type User struct {
	ID    int64  `json:"id"`    // ID is assigned by the store on insert
	Name  string `json:"name"`  // Name is the user's display name
	Email string `json:"email"` // Email is the user's email address
}
