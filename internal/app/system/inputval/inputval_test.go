package inputval

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleInput struct {
	Name  string `json:"name" validate:"required,min=2" label:"Name"`
	Email string `json:"email" validate:"required,email" label:"Email"`
	Phone string `json:"phone" validate:"required,phone" label:"Phone"`
	UF    string `json:"uf" validate:"required,region" label:"UF"`
}

func validSample() sampleInput {
	return sampleInput{
		Name:  "Ana",
		Email: "ana@example.com",
		Phone: "11987654321",
		UF:    "SP",
	}
}

func TestValidate_Valid(t *testing.T) {
	if result := Validate(validSample()); result.HasErrors() {
		t.Errorf("Validate() unexpected errors: %s", result.All())
	}
}

func TestValidate_Labels(t *testing.T) {
	in := validSample()
	in.Name = ""

	result := Validate(in)
	if !result.HasErrors() {
		t.Fatal("Validate() expected errors")
	}
	if got := result.First(); got != "Name is required." {
		t.Errorf("First() = %q, want %q", got, "Name is required.")
	}
}

func TestValidate_CustomRules(t *testing.T) {
	in := validSample()
	in.Phone = "123"
	in.UF = "XX"

	result := Validate(in)
	all := result.All()
	if !strings.Contains(all, "Phone must be a 10 or 11 digit number.") {
		t.Errorf("All() = %q, missing phone message", all)
	}
	if !strings.Contains(all, "UF must be a valid UF code.") {
		t.Errorf("All() = %q, missing region message", all)
	}
}

func TestValidate_JoinsMessages(t *testing.T) {
	in := validSample()
	in.Name = ""
	in.Email = "nope"

	result := Validate(in)
	if len(result.Errors) != 2 {
		t.Fatalf("Validate() produced %d errors, want 2", len(result.Errors))
	}
	if !strings.Contains(result.All(), ", ") {
		t.Errorf("All() = %q, want comma-joined messages", result.All())
	}
}

func TestResult_Add(t *testing.T) {
	var result Result
	result.Add("age", "Age must be at least 0.")
	if !result.HasErrors() {
		t.Error("HasErrors() = false after Add")
	}
	if result.First() != "Age must be at least 0." {
		t.Errorf("First() = %q", result.First())
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"ana@example.com", "a.b+c@sub.example.org"}
	for _, s := range valid {
		if !IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "nope", "a@", "Ana <ana@example.com>"}
	for _, s := range invalid {
		if IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = true, want false", s)
		}
	}
}

func TestIsValidObjectID(t *testing.T) {
	if !IsValidObjectID(primitive.NewObjectID().Hex()) {
		t.Error("IsValidObjectID(valid hex) = false")
	}
	if IsValidObjectID("not-an-id") {
		t.Error("IsValidObjectID(garbage) = true")
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1134567890", true},
		{"11987654321", true},
		{"123", false},
		{"119876543210", false},
		{"11a8765432", false},
	}
	for _, tt := range tests {
		if got := IsValidPhone(tt.in); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
