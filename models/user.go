package models

// User represents the example persisted entity exposed by the /v1/users
// endpoints. Email and Username are unique across all records.
type User struct {
	// ID is the server-assigned primary key. Zero until the record is
	// persisted.
	ID int64 `json:"id"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Username is the unique short name of the user.
	Username string `json:"username"`

	// FullName is the optional display name. Serialized as null when absent.
	FullName *string `json:"full_name"`

	// IsActive marks whether the account is enabled. Defaults to true for
	// newly created records.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
