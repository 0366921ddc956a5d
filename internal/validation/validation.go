// Package validation holds the pure input checks shared by every mutating
// operation. Nothing here touches the store.
package validation

import (
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Update actions accepted by the loan update operation.
const (
	ActionAdd  = "add"
	ActionPaid = "paid"
)

// MaxPurposeLength bounds the purpose field.
const MaxPurposeLength = 200

// IsValidObjectID reports whether id is a well-formed store identifier
// (a 24-character hex token).
func IsValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// IsValidAmount reports whether amount is strictly positive. A zero value is
// indistinguishable from an absent field after JSON decoding, so both fall
// through here.
func IsValidAmount(amount float64) bool {
	return amount > 0
}

// IsValidAction reports whether action is one of the accepted update actions.
func IsValidAction(action string) bool {
	return action == ActionAdd || action == ActionPaid
}

// IsValidPurpose reports whether the trimmed purpose is non-empty and within
// the length bound.
func IsValidPurpose(purpose string) bool {
	trimmed := strings.TrimSpace(purpose)
	n := utf8.RuneCountInString(trimmed)
	return n >= 1 && n <= MaxPurposeLength
}
