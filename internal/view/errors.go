package view

import "errors"

var ErrUnknownForm = errors.New("unknown form")
