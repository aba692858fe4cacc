// Package entity contains the core business objects of the learning platform,
// each representing a unique, identifiable record in the store.
package entity

import (
	"time"

	"learnhub/internal/errors"
	"learnhub/internal/util"
)

// Field constraints for user identity details.
const (
	NameMinLength     = 2
	NameMaxLength     = 50
	PhoneMinLength    = 9
	PhoneMaxLength    = 15
	IDNumberMinLength = 5
	IDNumberMaxLength = 12

	phoneSeparators = "- "
)

// Validation errors returned by NewUser and ValidateIdentity.
var (
	ErrInvalidName     = errors.New("name must be between 2 and 50 characters")
	ErrInvalidPhone    = errors.New("phone must be 9 to 15 characters of digits, dashes or spaces")
	ErrInvalidIDNumber = errors.New("id number must be between 5 and 12 characters")
)

// User is a learner registered on the platform.
type User struct {
	ID        string    // Store-assigned opaque identifier.
	Name      string    // Display name, part of the login triple.
	Phone     string    // Normalized phone number (digits only), unique.
	IDNumber  string    // National ID number, unique. Empty on legacy records.
	CreatedAt time.Time // Registration time.
}

// IsLegacy reports whether the record predates mandatory ID numbers.
func (u *User) IsLegacy() bool {
	return u.IDNumber == ""
}

// LegacyPhones lists the spellings a legacy record may store for a phone: the
// normalized form first, then the raw input when it differs.
func LegacyPhones(raw, normalized string) []string {
	if raw == normalized {
		return []string{normalized}
	}

	return []string{normalized, raw}
}

// NewUser builds a user from raw registration input, enforcing the field constraints
// and normalizing the phone number.
func NewUser(name, phone, idNumber string, now time.Time) (*User, error) {
	normalized, err := ValidateIdentity(name, phone, idNumber)
	if err != nil {
		return nil, err
	}

	return &User{
		Name:      name,
		Phone:     normalized,
		IDNumber:  idNumber,
		CreatedAt: now.UTC(),
	}, nil
}

// ValidateIdentity checks the (name, phone, id number) triple and returns the normalized phone.
func ValidateIdentity(name, phone, idNumber string) (string, error) {
	if n := util.RuneLen(name); n < NameMinLength || n > NameMaxLength {
		return "", ErrInvalidName
	}

	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	if n := util.RuneLen(idNumber); n < IDNumberMinLength || n > IDNumberMaxLength {
		return "", ErrInvalidIDNumber
	}

	return normalized, nil
}

// NormalizePhone checks the raw length of phone, strips dashes and spaces and
// requires the rest to be digits.
func NormalizePhone(phone string) (string, error) {
	if n := util.RuneLen(phone); n < PhoneMinLength || n > PhoneMaxLength {
		return "", ErrInvalidPhone
	}

	normalized := util.StripRunes(phone, phoneSeparators)
	if !util.IsDigits(normalized) {
		return "", ErrInvalidPhone
	}

	return normalized, nil
}
