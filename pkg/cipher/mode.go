package cipher

import (
	"fmt"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type Mode -trimprefix Mode -transform lower -text -yaml -output mode.gen.go

// Mode selects the direction of a transform.
type Mode int

const (
	ModeEncrypt Mode = iota
	ModeDecrypt
)

// ParseMode looks up a mode by name, ignoring case.
func ParseMode(name string) (Mode, error) {
	mode, err := ModeString(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("%w %q (supported: %s)", ErrUnknownMode, name, strings.Join(ModeStrings(), ", "))
	}
	return mode, nil
}
