// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents one person in the friends directory.
//
// The friends field holds the ObjectIDs of this user's friends. It is
// maintained as a set: $addToSet is the only write path, so it never
// contains duplicates, and the friendship manager rejects self-adds
// before they reach the store. Friendship is symmetric by intent, but
// the two sides live in two documents and are updated independently,
// so symmetry is best-effort rather than transactional.
//
// JSON field names follow the public API contract consumed by the
// mobile client (camelCase, _id exposed as id). BSON field names
// follow our snake_case collection conventions.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Username  string             `bson:"username" json:"username"` // unique, trimmed
	Email     string             `bson:"email" json:"email"`       // unique, lowercase
	Phone     string             `bson:"phone" json:"phone"`       // 10-11 digits
	Age       int                `bson:"age" json:"age"`
	UF        string             `bson:"uf" json:"uf"` // federative unit, see region.go

	// PasswordHash is a bcrypt hash. It never appears in JSON.
	PasswordHash string `bson:"password_hash" json:"-"`

	Friends []primitive.ObjectID `bson:"friends" json:"friends"`

	// Visibility flags controlling what other users may see.
	ShareInfoWithFriends   bool `bson:"share_info_with_friends" json:"shareInfoWithFriends"`
	ShareInfoWithStrangers bool `bson:"share_info_with_strangers" json:"shareInfoWithStrangers"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasFriend reports whether id is already present in the friends set.
func (u *User) HasFriend(id primitive.ObjectID) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}
