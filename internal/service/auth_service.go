package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"online_tuition/internal/model"
	"online_tuition/internal/repository"
	"online_tuition/internal/utils"

	"github.com/rs/zerolog"
)

// Rejection reasons. They are logged, never shown to the caller as is.
const (
	ReasonMissingCredentials = "missing credentials"
	ReasonNoSuchAccount      = "no such account"
	ReasonCredentialMismatch = "credential mismatch"
)

const (
	MsgInvalidCredentials = "Invalid Email or Password"
	MsgMissingCredentials = "Email and password are required"
)

// Decision is the outcome of one login attempt
type Decision struct {
	Accepted  bool
	Kind      model.AccountKind
	AccountID string
	Reason    string
}

// Message is the text safe to show the caller. Unknown email and wrong password read the same.
func (d Decision) Message() string {
	switch {
	case d.Accepted:
		return ""
	case d.Reason == ReasonMissingCredentials:
		return MsgMissingCredentials
	default:
		return MsgInvalidCredentials
	}
}

func rejected(kind model.AccountKind, reason string) Decision {
	return Decision{Kind: kind, Reason: reason}
}

// AuthService checks credentials for either account kind. It holds no session state,
// so every privileged request has to present credentials again.
type AuthService interface {
	Login(ctx context.Context, kind model.AccountKind, email, password string) (Decision, error)
}

type authService struct {
	students repository.StudentRepository
	admins   repository.AdminRepository
	log      zerolog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// NewAuthService creates a new AuthService
func NewAuthService(students repository.StudentRepository, admins repository.AdminRepository, log zerolog.Logger) AuthService {
	return &authService{
		students: students,
		admins:   admins,
		log:      log.With().Str("component", "auth").Logger(),
	}
}

type credential struct {
	id   string
	hash string
}

// Login looks up one account of kind by exact email and compares the password with its bcrypt hash.
// The returned error is set only when storage failed; a rejection is a Decision, not an error.
func (s *authService) Login(ctx context.Context, kind model.AccountKind, email, password string) (Decision, error) {
	if !kind.Valid() {
		return Decision{}, fmt.Errorf("unknown account kind %q", kind)
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return rejected(kind, ReasonMissingCredentials), nil
	}

	cred, err := s.lookup(ctx, kind, email)
	if err != nil {
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("credential lookup failed")
		return Decision{}, err
	}

	if cred == nil {
		// Burn the same bcrypt work as a real comparison so timing does not reveal unknown emails.
		utils.CheckPasswordHash(password, s.decoy())
		s.log.Info().Str("kind", string(kind)).Str("reason", ReasonNoSuchAccount).Msg("login rejected")
		return rejected(kind, ReasonNoSuchAccount), nil
	}

	if !utils.CheckPasswordHash(password, cred.hash) {
		s.log.Info().Str("kind", string(kind)).Str("reason", ReasonCredentialMismatch).Msg("login rejected")
		return rejected(kind, ReasonCredentialMismatch), nil
	}

	return Decision{Accepted: true, Kind: kind, AccountID: cred.id}, nil
}

func (s *authService) lookup(ctx context.Context, kind model.AccountKind, email string) (*credential, error) {
	switch kind {
	case model.KindStudent:
		st, err := s.students.FindByEmail(ctx, email)
		if err != nil {
			return nil, storageError("find student", err)
		}
		if st == nil {
			return nil, nil
		}
		return &credential{id: st.ID, hash: st.PasswordHash}, nil
	case model.KindAdmin:
		a, err := s.admins.FindByEmail(ctx, email)
		if err != nil {
			return nil, storageError("find admin", err)
		}
		if a == nil {
			return nil, nil
		}
		return &credential{id: a.ID, hash: a.PasswordHash}, nil
	default:
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}
}

func (s *authService) decoy() string {
	s.decoyOnce.Do(func() {
		// A hash failure leaves decoyHash empty; the comparison then fails fast, which only costs timing.
		s.decoyHash, _ = utils.HashPassword("decoy-password-never-issued")
	})
	return s.decoyHash
}
