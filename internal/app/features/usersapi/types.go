// internal/app/features/usersapi/types.go
package usersapi

import (
	"strings"

	"github.com/dalemusser/stratafriends/internal/app/system/authutil"
	"github.com/dalemusser/stratafriends/internal/app/system/inputval"
	"github.com/dalemusser/stratafriends/internal/domain/models"
)

// CreateUserInput is the body of POST /users.
type CreateUserInput struct {
	FirstName string `json:"firstName" validate:"required,min=2" label:"First name"`
	LastName  string `json:"lastName" validate:"required" label:"Last name"`
	Username  string `json:"username" validate:"required,min=3,max=30" label:"Username"`
	Email     string `json:"email" validate:"required,email" label:"Email"`
	Phone     string `json:"phone" validate:"required,phone" label:"Phone"`
	Age       int    `json:"age" label:"Age"`
	UF        string `json:"uf" validate:"required,region" label:"UF"`
	Password  string `json:"password" validate:"required" label:"Password"`

	// Optional visibility flags; shareInfoWithFriends defaults to true
	// when omitted, matching the document defaults.
	ShareInfoWithFriends   *bool `json:"shareInfoWithFriends"`
	ShareInfoWithStrangers *bool `json:"shareInfoWithStrangers"`
}

// validate runs tag validation plus the checks that don't fit tags
// (age sign, password policy). One message per violated field.
func (in *CreateUserInput) validate() *inputval.Result {
	result := inputval.Validate(*in)
	if in.Age < 0 {
		result.Add("age", "Age must be at least 0.")
	}
	if in.Password != "" {
		if err := authutil.ValidatePassword(in.Password); err != nil {
			result.Add("password", err.Error())
		}
	}
	return result
}

// UpdateUserInput is the body of PUT /users/{id}. All fields are
// optional; nil means "leave unchanged".
type UpdateUserInput struct {
	FirstName              *string `json:"firstName"`
	LastName               *string `json:"lastName"`
	Username               *string `json:"username"`
	Email                  *string `json:"email"`
	Phone                  *string `json:"phone"`
	Age                    *int    `json:"age"`
	UF                     *string `json:"uf"`
	Password               *string `json:"password"`
	ShareInfoWithFriends   *bool   `json:"shareInfoWithFriends"`
	ShareInfoWithStrangers *bool   `json:"shareInfoWithStrangers"`
}

// validate checks only the fields that were provided, with the same
// message style the create path produces.
func (in *UpdateUserInput) validate() *inputval.Result {
	result := &inputval.Result{}

	if in.FirstName != nil && len(strings.TrimSpace(*in.FirstName)) < 2 {
		result.Add("firstName", "First name must be at least 2.")
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		result.Add("lastName", "Last name is required.")
	}
	if in.Username != nil {
		u := strings.TrimSpace(*in.Username)
		if len(u) < 3 {
			result.Add("username", "Username must be at least 3.")
		} else if len(u) > 30 {
			result.Add("username", "Username must be at most 30.")
		}
	}
	if in.Email != nil && !inputval.IsValidEmail(strings.TrimSpace(*in.Email)) {
		result.Add("email", "A valid email address is required.")
	}
	if in.Phone != nil && !inputval.IsValidPhone(*in.Phone) {
		result.Add("phone", "Phone must be a 10 or 11 digit number.")
	}
	if in.Age != nil && *in.Age < 0 {
		result.Add("age", "Age must be at least 0.")
	}
	if in.UF != nil && !models.IsValidUF(strings.ToUpper(strings.TrimSpace(*in.UF))) {
		result.Add("uf", "UF must be a valid UF code.")
	}
	if in.Password != nil {
		if err := authutil.ValidatePassword(*in.Password); err != nil {
			result.Add("password", err.Error())
		}
	}

	return result
}

// BatchInput is the body of POST /users/batch.
type BatchInput struct {
	IDs []string `json:"ids"`
}

// AddFriendInput is the body of POST /users/{id}/add-friend.
type AddFriendInput struct {
	FriendID string `json:"friendId"`
}

// boolOrDefault unwraps an optional flag.
func boolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
