// Package domain holds the users and posts of the blog and the rules that connect them.
package domain

type UserID int

type User struct {
	ID       UserID
	Name     string
	Username string
	Email    string
}

// UserFields are the values a new User is created with.
// No field has to be unique, duplicates are permitted.
type UserFields struct {
	Name     string
	Username string
	Email    string
}

// NewUser builds the User for an already allocated id.
func NewUser(id UserID, fields UserFields) User {
	return User{
		ID:       id,
		Name:     fields.Name,
		Username: fields.Username,
		Email:    fields.Email,
	}
}

// UserChanges is a partial update. Only the fields that are set are changed.
type UserChanges struct {
	Name     *string
	Username *string
	Email    *string
}

// Apply merges the set fields into u. The id of u never changes.
func (c UserChanges) Apply(u *User) {
	if c.Name != nil {
		u.Name = *c.Name
	}

	if c.Username != nil {
		u.Username = *c.Username
	}

	if c.Email != nil {
		u.Email = *c.Email
	}
}

func (c UserChanges) IsEmpty() bool {
	return c.Name == nil && c.Username == nil && c.Email == nil
}
