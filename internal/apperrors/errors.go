package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates missing or rejected credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the credentials lack access to the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRateLimited indicates the upstream request quota was exhausted.
var ErrRateLimited = errors.New("rate limited")

// ErrUpstream indicates the broker failed or returned an unusable response.
var ErrUpstream = errors.New("upstream broker error")
