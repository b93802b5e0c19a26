package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"online_tuition/internal/model"
	"online_tuition/internal/utils"
	"online_tuition/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudent(t *testing.T) {
	students, _, accounts, _ := newTestServices()

	s, err := accounts.RegisterStudent(context.Background(), model.SignupStudentRequest{
		Name:     "Asha",
		Email:    "parent@example.com",
		Phone:    "5551234567",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.NotEqual(t, "secret1", s.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", s.PasswordHash))

	require.Len(t, students.records, 1)
	assert.Equal(t, s.ID, students.records[0].ID)
}

func TestRegisterStudent_ValidationFailure(t *testing.T) {
	students, _, accounts, _ := newTestServices()

	_, err := accounts.RegisterStudent(context.Background(), model.SignupStudentRequest{
		Email:    "not-an-email",
		Phone:    "12345",
		Password: "abc",
	})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.Equal(t, "not-an-email is not a valid email address", verrs.Field("email").Reason)
	assert.Equal(t, "12345 is not a valid phone number", verrs.Field("phone").Reason)
	assert.Equal(t, "Password must be at least 6 characters long", verrs.Field("password").Reason)
	assert.Empty(t, students.records, "nothing is stored when validation fails")
}

func TestRegisterStudent_PasswordTooLong(t *testing.T) {
	_, _, accounts, _ := newTestServices()

	_, err := accounts.RegisterStudent(context.Background(), model.SignupStudentRequest{
		Email:    "parent@example.com",
		Phone:    "5551234567",
		Password: strings.Repeat("é", 40),
	})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.NotNil(t, verrs.Field("password"))
	assert.Equal(t, "Password must be at most 72 bytes long", verrs.Field("password").Reason)
}

func TestRegisterStudent_DuplicateEmailAccepted(t *testing.T) {
	students, _, accounts, auth := newTestServices()

	first := signupStudent(t, accounts, "parent@example.com", "secret1")
	second := signupStudent(t, accounts, "parent@example.com", "secret2")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, students.records, 2)

	// The earliest record wins the lookup.
	d, err := auth.Login(context.Background(), model.KindStudent, "parent@example.com", "secret1")
	require.NoError(t, err)
	assert.True(t, d.Accepted)
	assert.Equal(t, first.ID, d.AccountID)
}

func TestRegisterStudent_StorageFailure(t *testing.T) {
	students, _, accounts, _ := newTestServices()
	students.err = errors.New("write concern timeout")

	_, err := accounts.RegisterStudent(context.Background(), model.SignupStudentRequest{
		Email:    "parent@example.com",
		Phone:    "5551234567",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestRegisterAdmin(t *testing.T) {
	_, admins, accounts, _ := newTestServices()

	a, err := accounts.RegisterAdmin(context.Background(), model.SignupAdminRequest{Email: "admin@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, a.IsAdmin)
	assert.True(t, utils.CheckPasswordHash("secret1", a.PasswordHash))
	assert.Len(t, admins.records, 1)
}

func TestRegisterAdmin_MissingFields(t *testing.T) {
	_, admins, accounts, _ := newTestServices()

	_, err := accounts.RegisterAdmin(context.Background(), model.SignupAdminRequest{})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email is required", verrs.Field("email").Reason)
	assert.Equal(t, "password is required", verrs.Field("password").Reason)
	assert.Empty(t, admins.records)
}

func TestListStudents(t *testing.T) {
	students, _, accounts, _ := newTestServices()

	list, err := accounts.ListStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	signupStudent(t, accounts, "a@example.com", "secret1")
	signupStudent(t, accounts, "b@example.com", "secret1")

	list, err = accounts.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a@example.com", list[0].Email)

	students.err = errors.New("down")
	_, err = accounts.ListStudents(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
