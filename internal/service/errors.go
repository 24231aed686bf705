package service

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// into HTTP status codes; nothing below this layer speaks HTTP.
var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned by Login when the credentials are
	// correct but the account has been deactivated.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrUnauthenticated means no valid identity could be established:
	// missing/malformed/expired token, bad signature, or the token's
	// account no longer exists or is inactive.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the identity is valid but lacks the privilege for
	// the requested action.
	ErrForbidden = errors.New("forbidden")

	// ErrSelfDelete is returned when an admin attempts to delete their own
	// account. Self-deletion is rejected regardless of role.
	ErrSelfDelete = errors.New("cannot delete own account")

	// ErrUserNotFound means the target account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken surfaces the email uniqueness violation from the
	// persistence layer.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidRole is returned when a role update names an unknown role.
	ErrInvalidRole = errors.New("invalid role")
)
