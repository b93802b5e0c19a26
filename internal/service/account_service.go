package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"online_tuition/internal/model"
	"online_tuition/internal/repository"
	"online_tuition/internal/utils"
	"online_tuition/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AccountService signs up students and admins and lists students
type AccountService interface {
	RegisterStudent(ctx context.Context, req model.SignupStudentRequest) (*model.Student, error)
	RegisterAdmin(ctx context.Context, req model.SignupAdminRequest) (*model.Admin, error)
	ListStudents(ctx context.Context) ([]model.Student, error)
}

type accountService struct {
	students  repository.StudentRepository
	admins    repository.AdminRepository
	validator *validation.Validator
	log       zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(students repository.StudentRepository, admins repository.AdminRepository, log zerolog.Logger) AccountService {
	return &accountService{
		students:  students,
		admins:    admins,
		validator: validation.New(),
		log:       log.With().Str("component", "accounts").Logger(),
	}
}

// RegisterStudent validates the form, hashes the password and stores the student.
// A second signup with the same email is accepted; nothing here enforces uniqueness.
func (s *accountService) RegisterStudent(ctx context.Context, req model.SignupStudentRequest) (*model.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.students.Create(ctx, student); err != nil {
		s.log.Error().Err(err).Msg("failed to insert student")
		return nil, storageError("create student", err)
	}

	s.log.Info().Str("student_id", student.ID).Msg("student signed up")
	return student, nil
}

// RegisterAdmin validates and stores a new admin account
func (s *accountService) RegisterAdmin(ctx context.Context, req model.SignupAdminRequest) (*model.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		s.log.Error().Err(err).Msg("failed to insert admin")
		return nil, storageError("create admin", err)
	}

	s.log.Info().Str("admin_id", admin.ID).Msg("admin signed up")
	return admin, nil
}

func (s *accountService) ListStudents(ctx context.Context) ([]model.Student, error) {
	students, err := s.students.FindAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list students")
		return nil, storageError("list students", err)
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// hashPassword maps bcrypt's length limit back to a field error so it reads like any other rule
func hashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", validation.Errors{{Field: "password", Reason: "Password must be at most 72 bytes long"}}
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
