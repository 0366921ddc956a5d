package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/repositories"
)

// setupMongo starts a mongod container and returns a database handle with
// indexes applied. Requires Docker; skipped in short mode.
func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(
		fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
	))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	db := client.Database("p2ploans_test")
	require.NoError(t, repositories.EnsureIndexes(ctx, db))
	return db
}

func TestUserRepositories(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	readRepo := repositories.NewUserReadRepository(db)
	writeRepo := repositories.NewUserWriteRepository(db)

	// Save assigns an id
	alice, err := writeRepo.Save(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, alice)
	assert.False(t, alice.ID.IsZero())
	assert.Equal(t, "alice", alice.Username)

	// GetByID round trip
	got, err := readRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.ID, got.ID)

	// GetByUsername round trip
	got, err = readRepo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.ID, got.ID)

	// Absent lookups return nil without error
	got, err = readRepo.GetByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, got)
	got, err = readRepo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Unique index rejects a duplicate username
	_, err = writeRepo.Save(ctx, "alice")
	assert.ErrorIs(t, err, repositories.ErrDuplicateUsername)

	// Delete reports whether a document matched
	deleted, err := writeRepo.Delete(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = writeRepo.Delete(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLoanRepositories(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	userWrite := repositories.NewUserWriteRepository(db)
	readRepo := repositories.NewLoanReadRepository(db)
	writeRepo := repositories.NewLoanWriteRepository(db)

	alice, err := userWrite.Save(ctx, "alice")
	require.NoError(t, err)
	bob, err := userWrite.Save(ctx, "bob")
	require.NoError(t, err)
	carol, err := userWrite.Save(ctx, "carol")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Millisecond)

	loanID, err := writeRepo.Save(ctx, models.LoanDB{
		PersonToBePaid: alice.ID,
		PersonToPay:    bob.ID,
		Amount:         100,
		Purpose:        "rent",
		LastUpdated:    now,
	})
	require.NoError(t, err)
	assert.False(t, loanID.IsZero())

	// Reverse-direction loan between the same pair
	_, err = writeRepo.Save(ctx, models.LoanDB{
		PersonToBePaid: bob.ID,
		PersonToPay:    alice.ID,
		Amount:         20,
		Purpose:        "lunch",
		LastUpdated:    now,
	})
	require.NoError(t, err)

	// Unrelated loan
	_, err = writeRepo.Save(ctx, models.LoanDB{
		PersonToBePaid: carol.ID,
		PersonToPay:    bob.ID,
		Amount:         5,
		Purpose:        "coffee",
		LastUpdated:    now,
	})
	require.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		loan, err := readRepo.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, loan)
		assert.Equal(t, alice.ID, loan.PersonToBePaid)
		assert.Equal(t, bob.ID, loan.PersonToPay)
		assert.Equal(t, float64(100), loan.Amount)

		loan, err = readRepo.GetByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, loan)
	})

	t.Run("ListByCreditor and ListByDebtor", func(t *testing.T) {
		toReceive, err := readRepo.ListByCreditor(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, toReceive, 1)

		toPay, err := readRepo.ListByDebtor(ctx, bob.ID)
		require.NoError(t, err)
		assert.Len(t, toPay, 2)

		empty, err := readRepo.ListByDebtor(ctx, carol.ID)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Len(t, empty, 0)
	})

	t.Run("ListBetween matches both directions", func(t *testing.T) {
		between, err := readRepo.ListBetween(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Len(t, between, 2)

		reversed, err := readRepo.ListBetween(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.Len(t, reversed, 2)

		none, err := readRepo.ListBetween(ctx, alice.ID, carol.ID)
		require.NoError(t, err)
		assert.Len(t, none, 0)
	})

	t.Run("ResolveUsers hydrates references", func(t *testing.T) {
		loans, err := readRepo.ListBetween(ctx, alice.ID, bob.ID)
		require.NoError(t, err)

		resolved, err := readRepo.ResolveUsers(ctx, loans)
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		for _, loan := range resolved {
			assert.NotEmpty(t, loan.PersonToBePaid.Username)
			assert.NotEmpty(t, loan.PersonToPay.Username)
		}

		empty, err := readRepo.ResolveUsers(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Len(t, empty, 0)
	})

	t.Run("UpdateAmount refreshes amount and timestamp", func(t *testing.T) {
		later := now.Add(time.Minute)
		matched, err := writeRepo.UpdateAmount(ctx, loanID, 120, later)
		require.NoError(t, err)
		assert.True(t, matched)

		loan, err := readRepo.GetByID(ctx, loanID)
		require.NoError(t, err)
		require.NotNil(t, loan)
		assert.Equal(t, float64(120), loan.Amount)
		assert.True(t, loan.LastUpdated.After(now))

		matched, err = writeRepo.UpdateAmount(ctx, primitive.NewObjectID(), 1, later)
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("Delete and DeleteByUser", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, loanID)
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = writeRepo.Delete(ctx, loanID)
		require.NoError(t, err)
		assert.False(t, deleted)

		// bob is debtor on the remaining two loans: both go
		n, err := writeRepo.DeleteByUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		remaining, err := readRepo.ListByCreditor(ctx, carol.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 0)
	})
}
