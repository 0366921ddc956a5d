package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/validation"
)

// Error variables
var (
	ErrLoanFieldsRequired   = errors.New("all fields are required")
	ErrInvalidUserIDs       = errors.New("invalid user ids")
	ErrSelfLoan             = errors.New("cannot create loan to yourself")
	ErrInvalidAmount        = errors.New("amount must be greater than 0")
	ErrPurposeTooLong       = errors.New("purpose cannot exceed 200 characters")
	ErrCreditorNotFound     = errors.New("person to be paid not found")
	ErrDebtorNotFound       = errors.New("person to pay not found")
	ErrInvalidLoanID        = errors.New("invalid loan id")
	ErrLoanNotFound         = errors.New("loan not found")
	ErrActionAmountRequired = errors.New("action and amount are required")
	ErrInvalidAction        = errors.New(`action must be "add" or "paid"`)
)

// LoanReader defines read operations on the loan store, including reference
// hydration.
type LoanReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.LoanDB, error)                 // Returns nil when absent
	ListByCreditor(ctx context.Context, userID primitive.ObjectID) ([]models.LoanDB, error)     // Loans where the user is owed
	ListByDebtor(ctx context.Context, userID primitive.ObjectID) ([]models.LoanDB, error)       // Loans where the user owes
	ListBetween(ctx context.Context, userID, otherID primitive.ObjectID) ([]models.LoanDB, error) // Loans between the pair, either direction
	ResolveUsers(ctx context.Context, loans []models.LoanDB) ([]models.Loan, error)             // Hydrates user references
}

// LoanWriter defines write operations on the loan store.
type LoanWriter interface {
	Save(ctx context.Context, loan models.LoanDB) (primitive.ObjectID, error)
	UpdateAmount(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// LoanService orchestrates the loan lifecycle against the user and loan stores.
type LoanService struct {
	users  UserReader
	reader LoanReader
	writer LoanWriter
}

// NewLoanService creates a new LoanService instance.
func NewLoanService(users UserReader, reader LoanReader, writer LoanWriter) *LoanService {
	return &LoanService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// Create records a new loan between two existing users and returns it with
// both user references resolved.
func (svc *LoanService) Create(ctx context.Context, creditorID, debtorID string, amount float64, purpose string) (*models.Loan, error) {
	// A zero amount is indistinguishable from an absent field after JSON
	// decoding; both fail the presence check.
	if creditorID == "" || debtorID == "" || amount == 0 || strings.TrimSpace(purpose) == "" {
		return nil, ErrLoanFieldsRequired
	}
	if !validation.IsValidObjectID(creditorID) || !validation.IsValidObjectID(debtorID) {
		return nil, ErrInvalidUserIDs
	}

	creditorOID, _ := primitive.ObjectIDFromHex(creditorID)
	debtorOID, _ := primitive.ObjectIDFromHex(debtorID)

	if creditorOID == debtorOID {
		return nil, ErrSelfLoan
	}
	if !validation.IsValidAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if !validation.IsValidPurpose(purpose) {
		return nil, ErrPurposeTooLong
	}

	// Both lookups are issued before either is checked; the creditor check
	// comes first when both are missing.
	var creditor, debtor *models.UserDB
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		creditor, err = svc.users.GetByID(gctx, creditorOID)
		return err
	})
	g.Go(func() error {
		var err error
		debtor, err = svc.users.GetByID(gctx, debtorOID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to fetch loan parties", "creditor", creditorID, "debtor", debtorID, "err", err)
		return nil, err
	}
	if creditor == nil {
		return nil, ErrCreditorNotFound
	}
	if debtor == nil {
		return nil, ErrDebtorNotFound
	}

	loan := models.LoanDB{
		PersonToBePaid: creditorOID,
		PersonToPay:    debtorOID,
		Amount:         amount,
		Purpose:        strings.TrimSpace(purpose),
		LastUpdated:    time.Now().UTC(),
	}
	id, err := svc.writer.Save(ctx, loan)
	if err != nil {
		logger.Log.Errorw("failed to save loan", "err", err)
		return nil, err
	}

	// Both parties are already in hand; no extra hydration fetch needed.
	return &models.Loan{
		ID:             id.Hex(),
		PersonToBePaid: creditor.View(),
		PersonToPay:    debtor.View(),
		Amount:         loan.Amount,
		Purpose:        loan.Purpose,
		LastUpdated:    loan.LastUpdated,
	}, nil
}

// GetUserLoans returns the loans where the user is creditor and where the user
// is debtor, both hydrated.
func (svc *LoanService) GetUserLoans(ctx context.Context, userID string) (toReceive, toPay []models.Loan, err error) {
	if !validation.IsValidObjectID(userID) {
		return nil, nil, ErrInvalidUserID
	}
	oid, _ := primitive.ObjectIDFromHex(userID)

	user, err := svc.users.GetByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to fetch user", "user", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	var asCreditor, asDebtor []models.LoanDB
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		asCreditor, err = svc.reader.ListByCreditor(gctx, oid)
		return err
	})
	g.Go(func() error {
		var err error
		asDebtor, err = svc.reader.ListByDebtor(gctx, oid)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to list user loans", "user", userID, "err", err)
		return nil, nil, err
	}

	if toReceive, err = svc.reader.ResolveUsers(ctx, asCreditor); err != nil {
		return nil, nil, err
	}
	if toPay, err = svc.reader.ResolveUsers(ctx, asDebtor); err != nil {
		return nil, nil, err
	}
	return toReceive, toPay, nil
}

// GetLoansBetween returns all loans between the two users in either direction,
// hydrated.
func (svc *LoanService) GetLoansBetween(ctx context.Context, userID, otherUserID string) ([]models.Loan, error) {
	if !validation.IsValidObjectID(userID) || !validation.IsValidObjectID(otherUserID) {
		return nil, ErrInvalidUserIDs
	}
	oid, _ := primitive.ObjectIDFromHex(userID)
	otherOID, _ := primitive.ObjectIDFromHex(otherUserID)

	var user, other *models.UserDB
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = svc.users.GetByID(gctx, oid)
		return err
	})
	g.Go(func() error {
		var err error
		other, err = svc.users.GetByID(gctx, otherOID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to fetch users", "user", userID, "other", otherUserID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if other == nil {
		return nil, ErrOtherUserNotFound
	}

	loans, err := svc.reader.ListBetween(ctx, oid, otherOID)
	if err != nil {
		logger.Log.Errorw("failed to list loans between users", "user", userID, "other", otherUserID, "err", err)
		return nil, err
	}
	return svc.reader.ResolveUsers(ctx, loans)
}

// Update applies an add or paid action to the loan amount. When the new amount
// reaches zero or below the loan is deleted and settled reports true; any
// overpayment is discarded. Otherwise the updated, hydrated loan is returned
// with a refreshed lastUpdated timestamp.
func (svc *LoanService) Update(ctx context.Context, loanID, action string, amount float64) (loan *models.Loan, settled bool, err error) {
	if !validation.IsValidObjectID(loanID) {
		return nil, false, ErrInvalidLoanID
	}
	if action == "" || amount == 0 {
		return nil, false, ErrActionAmountRequired
	}
	if !validation.IsValidAction(action) {
		return nil, false, ErrInvalidAction
	}
	if !validation.IsValidAmount(amount) {
		return nil, false, ErrInvalidAmount
	}

	oid, _ := primitive.ObjectIDFromHex(loanID)

	stored, err := svc.reader.GetByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to fetch loan", "loan", loanID, "err", err)
		return nil, false, err
	}
	if stored == nil {
		return nil, false, ErrLoanNotFound
	}

	newAmount := stored.Amount + amount
	if action == validation.ActionPaid {
		newAmount = stored.Amount - amount
	}

	// Fully paid or overpaid: delete the record. There is no way back to an
	// active loan once settled.
	if newAmount <= 0 {
		if _, err := svc.writer.Delete(ctx, oid); err != nil {
			logger.Log.Errorw("failed to delete settled loan", "loan", loanID, "err", err)
			return nil, false, err
		}
		return nil, true, nil
	}

	now := time.Now().UTC()
	if _, err := svc.writer.UpdateAmount(ctx, oid, newAmount, now); err != nil {
		logger.Log.Errorw("failed to update loan amount", "loan", loanID, "err", err)
		return nil, false, err
	}

	stored.Amount = newAmount
	stored.LastUpdated = now
	resolved, err := svc.reader.ResolveUsers(ctx, []models.LoanDB{*stored})
	if err != nil {
		return nil, false, err
	}
	return &resolved[0], false, nil
}

// Delete removes a loan by id. No cascade.
func (svc *LoanService) Delete(ctx context.Context, loanID string) error {
	if !validation.IsValidObjectID(loanID) {
		return ErrInvalidLoanID
	}
	oid, _ := primitive.ObjectIDFromHex(loanID)

	deleted, err := svc.writer.Delete(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to delete loan", "loan", loanID, "err", err)
		return err
	}
	if !deleted {
		return ErrLoanNotFound
	}
	return nil
}
