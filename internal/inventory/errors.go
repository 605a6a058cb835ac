package inventory

import (
	"errors"
	"fmt"
)

// ErrCredentialsNotConfigured means the private key or client email is
// missing. It is detected before any network call.
var ErrCredentialsNotConfigured = errors.New("google credentials not configured")

// NotFoundError is returned when no spreadsheet with the expected title is
// visible to the service account.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Spreadsheet %q not found. Make sure the sheet is shared with the service account.", e.Title)
}

// FetchError wraps any failure while authenticating, searching or reading
// the worksheet.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "fetch inventory: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }
