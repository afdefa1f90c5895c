// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record of a registered author.
// PasswordHash is never serialized; handlers map users to response models.
type User struct {
	ID           uint      // Store-assigned identifier, immutable once set.
	Username     string    // Unique display name.
	Email        string    // Unique login identifier, matched case-sensitively.
	PasswordHash string    // bcrypt hash, algorithm-tagged by its "$2a$<cost>$" prefix.
	AvatarURL    string    // Public URL of the stored avatar image.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// UserWithPosts is a read view joining a user with the posts they created.
// It is composed by the user usecase and never written back to the store.
type UserWithPosts struct {
	User  *User
	Posts []*Post
}
