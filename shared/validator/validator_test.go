package validator_test

import (
	"strings"
	"testing"

	"ehotel/shared/validator"
)

// Test structs for validation
type registrationPayload struct {
	FullName string `validate:"required" json:"full_name"`
	Email    string `validate:"required,email" json:"email"`
	Rating   int    `validate:"gte=1,lte=5" json:"rating"`
	Capacity string `validate:"oneof=single double suite" json:"capacity"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *registrationPayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: &registrationPayload{
				FullName: "John Doe",
				Email:    "john@example.com",
				Rating:   4,
				Capacity: "double",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &registrationPayload{
				Email:    "john@example.com",
				Rating:   4,
				Capacity: "double",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &registrationPayload{
				FullName: "John Doe",
				Email:    "invalid-email",
				Rating:   4,
				Capacity: "double",
			},
			expectError: true,
		},
		{
			name: "rating out of range",
			data: &registrationPayload{
				FullName: "John Doe",
				Email:    "john@example.com",
				Rating:   6,
				Capacity: "double",
			},
			expectError: true,
		},
		{
			name: "invalid capacity",
			data: &registrationPayload{
				FullName: "John Doe",
				Email:    "john@example.com",
				Rating:   4,
				Capacity: "penthouse",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid JSON body",
			body:        `{"full_name":"John Doe","email":"john@example.com","rating":4,"capacity":"suite"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			body:        `{"full_name":`,
			expectError: true,
		},
		{
			name:        "valid JSON failing validation",
			body:        `{"full_name":"","email":"john@example.com","rating":4,"capacity":"suite"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := registrationPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "not-an-email",
			tag:         "email",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
