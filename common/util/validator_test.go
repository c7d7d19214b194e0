package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
)

type testRegister struct {
	Name     string `json:"name" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type testIssue struct {
	TemplateID string            `json:"templateId" validate:"required"`
	Recipient  string            `json:"recipient" validate:"required,email"`
	Data       map[string]string `json:"data"`
}

type noTags struct {
	Name  string
	Email string
}

func validRegister() testRegister {
	return testRegister{Name: "Analytical Society", Email: "org@example.com", Password: "securepassword123"}
}

func TestValidateStruct(t *testing.T) {
	testCases := []struct {
		name       string
		mutate     func(r *testRegister)
		shouldFail bool
	}{
		{"Valid", func(r *testRegister) {}, false},
		{"Invalid email", func(r *testRegister) { r.Email = "invalid-email" }, true},
		{"Missing name", func(r *testRegister) { r.Name = "" }, true},
		{"Name too long", func(r *testRegister) { r.Name = "thisnameiswaytoolongforthefield" }, true},
		{"Password too short", func(r *testRegister) { r.Password = "1234567" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRegister()
			tc.mutate(&r)

			err := ValidateStruct(r)
			if tc.shouldFail {
				assert.Error(t, err, "Should fail validation")
			} else {
				assert.NoError(t, err, "Should pass validation")
			}
		})
	}
}

func TestValidateStruct_NoValidationTags(t *testing.T) {
	err := ValidateStruct(noTags{Email: "not-an-email"})
	assert.NoError(t, err, "Struct without validation tags should pass")
}

func TestValidatePayload(t *testing.T) {
	testCases := []struct {
		name    string
		payload testIssue
		field   string
		message string
	}{
		{
			name:    "Valid",
			payload: testIssue{TemplateID: "tpl-1", Recipient: "ada@example.com"},
		},
		{
			name:    "Missing template",
			payload: testIssue{Recipient: "ada@example.com"},
			field:   "templateId",
			message: "templateId is required",
		},
		{
			name:    "Bad recipient",
			payload: testIssue{TemplateID: "tpl-1", Recipient: "ada"},
			field:   "recipient",
			message: "recipient must be a valid email",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayload(tc.payload)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			assert.Equal(t, tc.field, apperror.FieldOf(err))
			assert.Equal(t, tc.message, apperror.Message(err))
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(testRegister{Email: "invalid-email", Password: "short"})
	require.Error(t, err)

	errors := GetValidationErrors(err)
	assert.ElementsMatch(t, []string{
		"name is required",
		"email must be a valid email",
		"password must be at least 8 characters",
	}, errors)
}

func TestGetValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError), "Non-validation errors should return empty slice")
	assert.Empty(t, GetValidationErrors(nil), "Nil error should return empty slice")
}
