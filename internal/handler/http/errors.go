// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidForm is returned when a request body is not a readable
	// multipart form.
	ErrInvalidForm = errors.New("Invalid form data")

	// errNotFound is the public text for unknown routes.
	errNotFound = errors.New("Not found")

	// errInternal is the public text of any error without a mapping.
	errInternal = errors.New("Internal server error")
)
