package utils

import (
	"fmt"
)

func FmtErrorf(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
