package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user does not exist")
	// ErrWrongPassword is returned when the password comparison fails.
	ErrWrongPassword = errors.New("incorrect password")
	// ErrNotBookOwner is returned when the requester did not create the book.
	ErrNotBookOwner = errors.New("you are not authorized to modify this book")
	// ErrForbiddenRole is returned when the token role lacks permission.
	ErrForbiddenRole = errors.New("role is not permitted for this resource")
	// ErrInvalidRefreshToken is returned when the refresh token fails verification.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrUserAlreadyExists is returned when registering a duplicate identifier.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrDuplicateTitle is returned when creating a book with a taken title.
	ErrDuplicateTitle = errors.New("book title already exists")
)

// HTTPError carries an HTTP status alongside a client-safe message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapToHTTP maps domain errors onto the NotFound / Unauthorized /
// Forbidden / InternalError taxonomy. Unknown errors collapse to a
// generic 500 so internal detail never reaches the response body.
func MapToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotBookOwner),
		errors.Is(err, ErrForbiddenRole),
		errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrDuplicateTitle):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
