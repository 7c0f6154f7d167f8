// Package phone validates and formats ten-digit US phone numbers.
//
// Everything here is pure: no I/O and no errors other than
// domain.ErrInvalidPhoneNumber from Canonical.
package phone
