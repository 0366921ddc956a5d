package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/repositories"
	"github.com/sbilibin2017/p2p-loans/internal/validation"
)

// Error variables
var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrUserNotFound      = errors.New("user not found")
	ErrOtherUserNotFound = errors.New("other user not found")
)

// UserReader defines read operations on the user store.
type UserReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.UserDB, error)      // Returns nil when absent
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)      // Returns nil when absent
}

// UserWriter defines write operations on the user store.
type UserWriter interface {
	Save(ctx context.Context, username string) (*models.UserDB, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// SessionService handles login-or-create and logout-with-cascade.
type SessionService struct {
	reader UserReader
	writer UserWriter
	loans  LoanWriter
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(reader UserReader, writer UserWriter, loans LoanWriter) *SessionService {
	return &SessionService{
		reader: reader,
		writer: writer,
		loans:  loans,
	}
}

// Login returns the user with the given trimmed username, creating it when no
// such user exists yet.
func (svc *SessionService) Login(ctx context.Context, username string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "username", username, "err", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = svc.writer.Save(ctx, username)
	if errors.Is(err, repositories.ErrDuplicateUsername) {
		// Lost a race with a concurrent login for the same new username;
		// return the winner's record instead.
		user, err = svc.reader.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUsernameTaken
		}
		return user, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return nil, err
	}
	return user, nil
}

// Logout deletes every loan referencing the user and then the user record.
// The two steps are not transactional: an interruption in between leaves the
// loans gone and the user record behind.
func (svc *SessionService) Logout(ctx context.Context, id string) error {
	if !validation.IsValidObjectID(id) {
		return ErrInvalidUserID
	}
	oid, _ := primitive.ObjectIDFromHex(id)

	user, err := svc.reader.GetByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to fetch user", "user", id, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := svc.loans.DeleteByUser(ctx, oid); err != nil {
		logger.Log.Errorw("failed to cascade delete loans", "user", id, "err", err)
		return err
	}
	if _, err := svc.writer.Delete(ctx, oid); err != nil {
		logger.Log.Errorw("failed to delete user", "user", id, "err", err)
		return err
	}
	return nil
}
