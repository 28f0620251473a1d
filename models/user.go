package models

import "os"

// User defines the structure for registered accounts
type User struct {
	UserID       string   `dynamodbav:"userId" json:"id"`
	Name         string   `dynamodbav:"name" json:"name"`
	EmailID      string   `dynamodbav:"emailId" json:"email"`
	PasswordHash string   `dynamodbav:"passwordHash" json:"-"`
	Skills       []string `dynamodbav:"skills,omitempty" json:"skills"`
	AvatarKey    string   `dynamodbav:"avatarKey,omitempty" json:"avatarKey,omitempty"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// PublicProfile is the only shape of an account ever returned to clients.
// The password hash never leaves the server.
type PublicProfile struct {
	UserID    string   `json:"id"`
	Name      string   `json:"name"`
	EmailID   string   `json:"email"`
	Skills    []string `json:"skills"`
	AvatarKey string   `json:"avatarKey,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

// Public returns the client-facing projection of the user
func (u User) Public() PublicProfile {
	return PublicProfile{
		UserID:    u.UserID,
		Name:      u.Name,
		EmailID:   u.EmailID,
		Skills:    u.Skills,
		AvatarKey: u.AvatarKey,
		CreatedAt: u.CreatedAt,
	}
}

// ProfileUpdate carries a partial profile edit. Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Skills []string `json:"skills"`
}

// UsersTable is the DynamoDB table name for user accounts
var UsersTable = tableFromEnv("USERS_TABLE", "Users")

// EmailIndex is the GSI on emailId used for login and uniqueness checks
const EmailIndex = "email-index"

func tableFromEnv(envVar, fallback string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}
