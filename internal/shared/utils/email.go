package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

var emailFolder = cases.Fold()

// NormalizeEmail trims surrounding whitespace and case-folds the
// address so "Foo@Bar.com " compares equal to "foo@bar.com". The record
// store's collation is not trusted to do this.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}

// EmailsEqual reports whether two addresses refer to the same account.
func EmailsEqual(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}
