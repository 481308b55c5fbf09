package models

// Credentials is the request body accepted by both the registration and the
// login endpoints.
//
// Password is plaintext here and must not outlive the request: it is hashed
// on registration and compared against the stored hash on login.
type Credentials struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,max=72"`
}

// User converts the credentials into a [User] carrying the phone number only.
func (c Credentials) User() User {
	return User{Phone: c.Phone}
}
