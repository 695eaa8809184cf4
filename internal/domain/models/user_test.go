package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHasFriend(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	u := User{Friends: []primitive.ObjectID{a}}
	if !u.HasFriend(a) {
		t.Error("HasFriend() = false for a present id")
	}
	if u.HasFriend(b) {
		t.Error("HasFriend() = true for an absent id")
	}

	empty := User{}
	if empty.HasFriend(a) {
		t.Error("HasFriend() = true on an empty set")
	}
}

func TestIsValidUF(t *testing.T) {
	for _, uf := range AllUFs() {
		if !IsValidUF(uf) {
			t.Errorf("IsValidUF(%q) = false, want true", uf)
		}
	}
	for _, bad := range []string{"", "XX", "sp", "SPP"} {
		if IsValidUF(bad) {
			t.Errorf("IsValidUF(%q) = true, want false", bad)
		}
	}
}

func TestAllUFs_Count(t *testing.T) {
	if got := len(AllUFs()); got != 27 {
		t.Errorf("len(AllUFs()) = %d, want 27", got)
	}
}
