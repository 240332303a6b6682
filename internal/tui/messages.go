package tui

import (
	"github.com/MKhiriev/go-file-crypt/internal/view"
	"github.com/MKhiriev/go-file-crypt/models"
)

type keyGeneratedMsg struct {
	key models.GeneratedKey
	err error
}

type submittedMsg struct {
	formID  string
	outcome view.SubmitOutcome
}

type downloadedMsg struct {
	paths []string
	err   error
}

type copyExpiredMsg struct {
	button *view.Button
	token  int
}

type toastExpiredMsg struct {
	seq int
}
