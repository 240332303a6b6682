package models

// Mode selects how the file key is obtained.
type Mode string

const (
	// ModeKey seals files with a random or user supplied 256-bit key.
	ModeKey Mode = "key"
	// ModePassword derives the file key from a password.
	ModePassword Mode = "password"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeKey || m == ModePassword
}

func (m Mode) String() string {
	return string(m)
}
