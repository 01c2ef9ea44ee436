package models

// User is a locally registered account.
// Accounts exist only to partition board data per user; the password is
// stored as-is in the local document store, which is acceptable for a
// single-machine, single-writer tool.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Password string `json:"password"`
}

// GuestUserID is the partition key used for board data when nobody is
// signed in.
const GuestUserID = "guest"
