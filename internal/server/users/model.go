package users

import "time"

// User is the account record keyed by phone number. CreatedAt is the
// moment of the first successful login.
type User struct {
	ID        string
	Phone     string
	CreatedAt time.Time
}
