package validation

import (
	"strings"
	"testing"

	"online_tuition/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"a.b-c@d-e.com", true},
		{"parent_1@mail.school.org", true},
		{"a@b", false},
		{"a@b.c", false},
		{"a@b.toolong", false},
		{"no-at-sign.com", false},
		{"a b@c.com", false},
		{"@b.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			fe := ValidateEmail(tt.email)
			if tt.valid {
				assert.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, "email", fe.Field)
		})
	}
}

func TestValidateEmail_Messages(t *testing.T) {
	assert.Equal(t, "email is required", ValidateEmail("").Reason)
	assert.Equal(t, "a@b is not a valid email address", ValidateEmail("a@b").Reason)
}

func TestValidatePhone(t *testing.T) {
	assert.Nil(t, ValidatePhone("5551234567"))

	for _, phone := range []string{"555123456", "55512345678", "555-123-4567", "+15551234567", "555123456a", ""} {
		fe := ValidatePhone(phone)
		require.NotNil(t, fe, phone)
		assert.Equal(t, "phone", fe.Field)
	}

	assert.Equal(t, "555123456 is not a valid phone number", ValidatePhone("555123456").Reason)
}

func TestValidatePassword(t *testing.T) {
	for n := 0; n < 6; n++ {
		assert.NotNil(t, ValidatePassword(strings.Repeat("x", n)), "length %d", n)
	}
	assert.Nil(t, ValidatePassword("secret"))
	assert.Nil(t, ValidatePassword("a much longer passphrase"))

	// six characters, twelve bytes
	assert.Nil(t, ValidatePassword("пароль"))

	assert.Equal(t, "Password must be at least 6 characters long", ValidatePassword("12345").Reason)

	tooLong := ValidatePassword(strings.Repeat("x", 73))
	require.NotNil(t, tooLong)
	assert.Equal(t, "Password must be at most 72 bytes long", tooLong.Reason)
}

func TestValidator_Struct_ReportsEveryField(t *testing.T) {
	v := New()

	err := v.Struct(model.SignupStudentRequest{
		Name:     "Asha",
		Email:    "not-an-email",
		Phone:    "123",
		Password: "abc",
	})
	require.Error(t, err)

	verrs, ok := err.(Errors)
	require.True(t, ok)
	require.Len(t, verrs, 3)
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, "phone", verrs[1].Field)
	assert.Equal(t, "password", verrs[2].Field)
	assert.Equal(t, "not-an-email is not a valid email address", verrs.Field("email").Reason)
	assert.Nil(t, verrs.Field("name"))
}

func TestValidator_Struct_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(model.SignupStudentRequest{
		Email:    "parent@example.com",
		Phone:    "5551234567",
		Password: "secret1",
	}))
	assert.NoError(t, v.Struct(model.SignupAdminRequest{
		Email:    "admin@example.com",
		Password: "secret1",
	}))
}

func TestValidator_Struct_AdminMissingFields(t *testing.T) {
	err := New().Struct(model.SignupAdminRequest{})
	require.Error(t, err)

	verrs := err.(Errors)
	assert.Equal(t, "email is required", verrs.Field("email").Reason)
	assert.Equal(t, "password is required", verrs.Field("password").Reason)
	assert.Equal(t, "email is required; password is required", verrs.Error())
}
