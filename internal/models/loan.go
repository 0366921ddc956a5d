package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanDB represents a loan document in the loans collection.
// User references are stored as raw ObjectIDs and resolved on read.
type LoanDB struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`  // Primary key, assigned by the store
	PersonToBePaid primitive.ObjectID `bson:"personToBePaid"` // Creditor reference
	PersonToPay    primitive.ObjectID `bson:"personToPay"`    // Debtor reference
	Amount         float64            `bson:"amount"`         // Always > 0 while the document exists
	Purpose        string             `bson:"purpose"`        // Stored trimmed, 1-200 characters
	LastUpdated    time.Time          `bson:"lastUpdated"`    // Set at creation and on every amount change
}

// Loan is the response view of a loan with both user references resolved
// swagger:model Loan
type Loan struct {
	// Loan identifier (hex)
	// example: 64f1b2c3d4e5f60718293a4c
	ID string `json:"id"`

	// Creditor (the user owed money)
	PersonToBePaid User `json:"personToBePaid"`

	// Debtor (the user who owes)
	PersonToPay User `json:"personToPay"`

	// Outstanding amount
	// example: 50
	Amount float64 `json:"amount"`

	// What the loan is for
	// example: lunch
	Purpose string `json:"purpose"`

	// Timestamp of the last amount change
	LastUpdated time.Time `json:"lastUpdated"`
}
