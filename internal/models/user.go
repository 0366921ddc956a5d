package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDB represents a user document in the users collection
type UserDB struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"` // Primary key, assigned by the store
	Username string             `bson:"username"`      // Unique username, stored trimmed
}

// User is the response view of a user
// swagger:model User
type User struct {
	// User identifier (hex)
	// example: 64f1b2c3d4e5f60718293a4b
	ID string `json:"id"`

	// Username
	// example: alice
	Username string `json:"username"`
}

// View converts a user document into its response view.
func (u UserDB) View() User {
	return User{
		ID:       u.ID.Hex(),
		Username: u.Username,
	}
}
