// Package dao provides data access objects for use in the voxctl server.
package dao

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/google/uuid"
)

var (
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
	ErrNotFound            = errors.New("the requested resource was not found")
	ErrDecodingFailure     = errors.New("field could not be decoded from DB storage format to model format")
)

// Store holds all the repositories.
type Store interface {
	Users() UserRepository
	Sessions() SessionRepository
	Recognitions() RecognitionRepository
	Close() error
}

// RecognitionRepository persists a log of every dispatch attempt made
// against the command grammar, successful or not, for audit and
// troubleshooting of a deployed decoder.
type RecognitionRepository interface {
	Create(ctx context.Context, rec Recognition) (Recognition, error)
	GetByID(ctx context.Context, id uuid.UUID) (Recognition, error)

	// GetAll retrieves all Recognitions from persistence. If notBefore is
	// non-nil, only ones on or after that time are included. If notAfter is
	// non-nil, only ones on or before that time are included.
	GetAll(ctx context.Context, notBefore *time.Time, notAfter *time.Time) ([]Recognition, error)

	// GetAllByUser retrieves Recognitions logged under a given user. If
	// notBefore is non-nil, only ones on or after that time are included. If
	// notAfter is non-nil, only ones on or before that time are included.
	GetAllByUser(ctx context.Context, userID uuid.UUID, notBefore *time.Time, notAfter *time.Time) ([]Recognition, error)

	// GetAllBySession retrieves all Recognitions for a given session from
	// persistence. If notBefore is non-nil, only ones on or after that time
	// are included. If notAfter is non-nil, only ones on or before that time
	// are included.
	GetAllBySession(ctx context.Context, sessionID uuid.UUID, notBefore *time.Time, notAfter *time.Time) ([]Recognition, error)
	Delete(ctx context.Context, id uuid.UUID) (Recognition, error)
	Close() error
}

// Recognition is a single logged attempt to dispatch a transcript against
// the command grammar.
type Recognition struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	UserID    uuid.UUID
	Created   time.Time
	Input     string
	Verdict   grammar.Result
	Command   string // name of the Command dispatched, empty if Verdict != Ok
}

type SessionRepository interface {
	Create(ctx context.Context, sesh Session) (Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
	GetAll(ctx context.Context) ([]Session, error)
	Update(ctx context.Context, id uuid.UUID, sesh Session) (Session, error)
	Delete(ctx context.Context, id uuid.UUID) (Session, error)
	Close() error
}

// Session is one run of a connected decoder client, from its first
// recognized transcript to its last.
type Session struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Created time.Time

	// ModelDir is the speech-recognition model directory the client reported
	// using for this session, if any.
	ModelDir string

	// HeldKeys holds the modifier keys, in press order, that a HOLD command
	// has sent a Down keystroke for but that have not yet been released.
	// Persisting it lets a reconnecting client pick up where a dropped
	// session left off instead of leaving keys stuck down.
	HeldKeys []rune
}

type UserRepository interface {

	// Create creates a new User. All attributes except for auto-generated
	// fields are taken from the provided User.
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)

	// Close closes the connection.
	Close() error
}

type Role int

const (
	Guest Role = iota
	Unverified
	Normal

	Admin Role = 100
)

func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case Unverified:
		return "unverified"
	case Normal:
		return "normal"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

func ParseRole(s string) (Role, error) {
	check := strings.ToLower(s)
	switch check {
	case "guest":
		return Guest, nil
	case "unverified":
		return Unverified, nil
	case "normal":
		return Normal, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("must be one of 'guest', 'unverified', 'normal', or 'admin'")
	}
}

type User struct {
	ID             uuid.UUID     // PK, NOT NULL
	Username       string        // UNIQUE, NOT NULL
	Password       string        // NOT NULL
	Email          *mail.Address // NOT NULL
	Role           Role          // NOT NULL
	Created        time.Time     // NOT NULL
	Modified       time.Time
	LastLogoutTime time.Time // NOT NULL DEFAULT NOW()
	LastLoginTime  time.Time // NOT NULL
}
