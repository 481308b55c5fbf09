package models

// MessageResponse is the body of every response that only carries a
// human-readable message: registration success and all failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserSummary is the non-sensitive view of a [User] returned to clients.
type UserSummary struct {
	ID    int64  `json:"id"`
	Phone string `json:"phone"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}
