package user

import "fmt"

// DuplicatePhoneError signals that an account already exists for the phone
// number supplied at signup.
type DuplicatePhoneError struct {
	PhoneNumber string
}

func (e DuplicatePhoneError) Error() string {
	return "an account already exists for phone number " + e.PhoneNumber
}

// UnknownCenterError signals that the signup request named a center that is
// not in the directory.
type UnknownCenterError struct {
	CenterID string
}

func (e UnknownCenterError) Error() string {
	return fmt.Sprintf("service center %s does not exist", e.CenterID)
}

// AccountNotFoundError signals a login attempt against an unregistered phone
// number.
type AccountNotFoundError struct {
	PhoneNumber string
}

func (e AccountNotFoundError) Error() string {
	return "no account registered for phone number " + e.PhoneNumber
}
