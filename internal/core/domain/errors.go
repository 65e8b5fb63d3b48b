package domain

import "errors"

var ErrPetNotFound = errors.New("pet not found")
var ErrDonationNotFound = errors.New("donation not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrRequestExists = errors.New("adoption request already submitted")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidID = errors.New("invalid id")
var ErrEmptyUpdate = errors.New("no updatable fields in payload")

// ErrPetNotOwned and ErrPaymentNotOwned deliberately conflate "missing" and
// "not yours" so a delete cannot be used to probe for document existence.
var ErrPetNotOwned = errors.New("pet not found or not authorized")
var ErrPaymentNotOwned = errors.New("donation not found or not authorized")
