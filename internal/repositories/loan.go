package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
)

// LoanReadRepository handles read access to the loans collection.
// It also resolves the raw user references stored on loan documents.
type LoanReadRepository struct {
	loans *mongo.Collection
	users *mongo.Collection
}

func NewLoanReadRepository(db *mongo.Database) *LoanReadRepository {
	return &LoanReadRepository{
		loans: db.Collection(loansCollection),
		users: db.Collection(usersCollection),
	}
}

// GetByID returns the loan with the given id, or nil when absent.
func (r *LoanReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.LoanDB, error) {
	filter := bson.M{"_id": id}

	var loan models.LoanDB
	err := r.loans.FindOne(ctx, filter).Decode(&loan)

	logger.Log.Infow("loans.FindOne",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListByCreditor returns all loans where the given user is owed money.
func (r *LoanReadRepository) ListByCreditor(ctx context.Context, userID primitive.ObjectID) ([]models.LoanDB, error) {
	return r.list(ctx, bson.M{"personToBePaid": userID})
}

// ListByDebtor returns all loans where the given user owes money.
func (r *LoanReadRepository) ListByDebtor(ctx context.Context, userID primitive.ObjectID) ([]models.LoanDB, error) {
	return r.list(ctx, bson.M{"personToPay": userID})
}

// ListBetween returns all loans between the two users in either direction.
func (r *LoanReadRepository) ListBetween(ctx context.Context, userID, otherUserID primitive.ObjectID) ([]models.LoanDB, error) {
	return r.list(ctx, bson.M{
		"$or": bson.A{
			bson.M{"personToBePaid": userID, "personToPay": otherUserID},
			bson.M{"personToBePaid": otherUserID, "personToPay": userID},
		},
	})
}

func (r *LoanReadRepository) list(ctx context.Context, filter bson.M) ([]models.LoanDB, error) {
	cur, err := r.loans.Find(ctx, filter)

	logger.Log.Infow("loans.Find",
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	loans := make([]models.LoanDB, 0)
	if err := cur.All(ctx, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// ResolveUsers hydrates the user references of the given loans into full user
// records with a single fetch of the referenced users. Dangling references are
// left as zero-value users.
func (r *LoanReadRepository) ResolveUsers(ctx context.Context, loans []models.LoanDB) ([]models.Loan, error) {
	resolved := make([]models.Loan, 0, len(loans))
	if len(loans) == 0 {
		return resolved, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, 2*len(loans))
	ids := make(bson.A, 0, 2*len(loans))
	for _, loan := range loans {
		for _, id := range []primitive.ObjectID{loan.PersonToBePaid, loan.PersonToPay} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	cur, err := r.users.Find(ctx, filter)

	logger.Log.Infow("users.Find",
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.UserDB
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.UserDB, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, loan := range loans {
		resolved = append(resolved, models.Loan{
			ID:             loan.ID.Hex(),
			PersonToBePaid: byID[loan.PersonToBePaid].View(),
			PersonToPay:    byID[loan.PersonToPay].View(),
			Amount:         loan.Amount,
			Purpose:        loan.Purpose,
			LastUpdated:    loan.LastUpdated,
		})
	}
	return resolved, nil
}

// LoanWriteRepository handles write access to the loans collection
type LoanWriteRepository struct {
	coll *mongo.Collection
}

func NewLoanWriteRepository(db *mongo.Database) *LoanWriteRepository {
	return &LoanWriteRepository{coll: db.Collection(loansCollection)}
}

// Save inserts a new loan and returns its assigned id.
func (r *LoanWriteRepository) Save(ctx context.Context, loan models.LoanDB) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, loan)

	logger.Log.Infow("loans.InsertOne",
		"personToBePaid", loan.PersonToBePaid,
		"personToPay", loan.PersonToPay,
		"amount", loan.Amount,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateAmount sets a new amount and lastUpdated timestamp on the loan.
// Returns false when no document matched.
func (r *LoanWriteRepository) UpdateAmount(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) (bool, error) {
	update := bson.M{"$set": bson.M{"amount": amount, "lastUpdated": at}}

	res, err := r.coll.UpdateByID(ctx, id, update)

	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}
	logger.Log.Infow("loans.UpdateByID",
		"id", id,
		"amount", amount,
		"matched", matched,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Delete removes the loan with the given id. Returns false when no document matched.
func (r *LoanWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id}

	res, err := r.coll.DeleteOne(ctx, filter)

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}
	logger.Log.Infow("loans.DeleteOne",
		"filter", filter,
		"deleted", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// DeleteByUser removes every loan where the user is creditor or debtor and
// returns the number of deleted documents.
func (r *LoanWriteRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"personToBePaid": userID},
			bson.M{"personToPay": userID},
		},
	}

	res, err := r.coll.DeleteMany(ctx, filter)

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}
	logger.Log.Infow("loans.DeleteMany",
		"filter", filter,
		"deleted", deleted,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return deleted, nil
}
