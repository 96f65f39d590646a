package errs

import (
	"errors"
	"net/http"
)

// Authentication & authorization sentinels
var (
	ErrMissingToken      = errors.New("missing access token")
	ErrInvalidToken      = errors.New("invalid access token")
	ErrExpiredToken      = errors.New("expired access token")
	ErrInvalidClaims     = errors.New("invalid token claims")
	ErrPermissionMissing = errors.New("permission not found")
)

var Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")

// Machine-readable reason codes carried in auth error bodies. The guard
// short-circuits at the first failing stage, so at most one appears per
// response.
const (
	ReasonHeaderMissing    = "authorization_header_missing"
	ReasonInvalidHeader    = "invalid_header"
	ReasonInvalidToken     = "invalid_token"
	ReasonTokenExpired     = "token_expired"
	ReasonInvalidClaims    = "invalid_claims"
	ReasonPermissionDenied = "unauthorized"
)

func NewMissingAuthHeaderError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Authorization header is expected",
		Field:      "authorization",
		Reason:     ReasonHeaderMissing,
	}
}

func NewInvalidAuthHeaderError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Authorization header must be a bearer token",
		Field:      "authorization",
		Reason:     ReasonInvalidHeader,
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Unable to verify access token",
		Field:      "authorization",
		Reason:     ReasonInvalidToken,
		Cause:      cause,
	}
}

func NewTokenExpiredError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
		Details:    "Access token has expired",
		Field:      "authorization",
		Reason:     ReasonTokenExpired,
	}
}

func NewInvalidClaimsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidClaims,
		Details:    "Permissions claim not included in token",
		Field:      "authorization",
		Reason:     ReasonInvalidClaims,
	}
}

func NewPermissionNotFoundError(permission string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        errors.New("Permission not found."),
		Details:    "Required permission: " + permission,
		Field:      "authorization",
		Reason:     ReasonPermissionDenied,
	}
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsExpiredTokenError(err error) bool {
	return errors.Is(err, ErrExpiredToken)
}
