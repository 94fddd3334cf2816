package domain

import "errors"

// Error categories. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrValidationFailed   = errors.New("validation failed")
	ErrOutOfStock         = errors.New("out of stock")
	ErrAlreadyProcessed   = errors.New("already processed")
	ErrEmailTaken         = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

// Error is a client-facing error that belongs to one of the categories above.
// Error() is safe to return to the caller as is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError creates a client-facing error of the given kind
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Catalog errors
var (
	ErrBrandNotFound = NewError(ErrNotFound, "The brand with the given ID was not found.")
	ErrStyleNotFound = NewError(ErrNotFound, "The style with the given ID was not found.")
	ErrCarNotFound   = NewError(ErrNotFound, "The car with the given ID was not found.")
	ErrInvalidBrand  = NewError(ErrInvalidReference, "Invalid brand.")
	ErrInvalidStyle  = NewError(ErrInvalidReference, "Invalid style.")
)

// Account errors
var (
	ErrCustomerNotFound = NewError(ErrNotFound, "The customer with the given ID was not found.")
	ErrEmployeeNotFound = NewError(ErrNotFound, "The employee with the given ID was not found.")
	ErrUserRegistered   = NewError(ErrEmailTaken, "User already registered.")
	ErrBadLogin         = NewError(ErrInvalidCredentials, "Invalid email or password.")
	ErrNoTokenProvided  = NewError(ErrUnauthenticated, "Access denied. No token provided.")
	ErrTokenRejected    = NewError(ErrInvalidToken, "Invalid token.")
	ErrEmployeeRequired = NewError(ErrInvalidToken, "Access denied. Employees only.")
	ErrManagerRequired  = NewError(ErrInvalidToken, "Access denied. Managers only.")
)

// Rental errors
var (
	ErrRentalNotFound    = NewError(ErrNotFound, "The rental with the given ID was not found.")
	ErrNoRentalForPair   = NewError(ErrNotFound, "Rental not found.")
	ErrRentalChanged     = NewError(ErrAlreadyProcessed, "Rental was changed by another request.")
	ErrInvalidCustomer   = NewError(ErrInvalidReference, "Invalid customer.")
	ErrInvalidCar        = NewError(ErrInvalidReference, "Invalid car.")
	ErrCarNotInStock     = NewError(ErrOutOfStock, "Car not in stock.")
	ErrReturnAlreadyDone = NewError(ErrAlreadyProcessed, "Return already processed.")
)

// IsClientError reports whether err belongs to a category that is reported
// to the caller instead of being logged as an internal failure.
func IsClientError(err error) bool {
	for _, kind := range []error{
		ErrUnauthenticated, ErrInvalidToken, ErrInvalidReference, ErrValidationFailed,
		ErrOutOfStock, ErrAlreadyProcessed, ErrEmailTaken, ErrInvalidCredentials, ErrNotFound,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
