// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but has no second space-separated part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the second part of the "Authorization"
	// header is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrFormParse is returned when a multipart profile update cannot be
	// parsed or exceeds the upload limit.
	ErrFormParse = errors.New("invalid multipart form")

	// ErrNoSessionUser is returned when a protected handler runs without the
	// auth gate having stored a user.
	ErrNoSessionUser = errors.New("no authenticated user in request context")
)
