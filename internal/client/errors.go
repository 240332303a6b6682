package client

import "errors"

var ErrNotConfigured = errors.New("client is not configured")
