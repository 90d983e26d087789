// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errHTTPNotConfigured is returned by NewServer when either the listen
	// address or the HTTP handler is missing.
	errHTTPNotConfigured = errors.New("http server is not configured")
	errNothingToRun      = errors.New("no http server to run")
)
