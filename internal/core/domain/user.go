package domain

import "errors"

const (
	RoleHouseOwner  = "houseOwner"
	RoleHouseRenter = "houseRenter"
)

var (
	ErrEmailInUse         = errors.New("Email already exists")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Password is incorrect")
)

// User models a registered account. Email is the unique identity key; the
// role never changes after registration.
//
// Password holds the bcrypt digest and is serialized on purpose: the original
// contract returns the stored record verbatim from login and user lookup.
type User struct {
	ID       string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password,omitempty" bson:"password"`
	Role     string `json:"role" bson:"role"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// ValidRole reports whether r is one of the two marketplace roles.
func ValidRole(r string) bool {
	return r == RoleHouseOwner || r == RoleHouseRenter
}
