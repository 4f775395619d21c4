package ui

import (
	"fmt"
	"strings"
)

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// uniqueUsername rejects empty names and names held by anyone but excludeID.
func uniqueUsername(unique func(string, int) bool, excludeID int) func(string) error {
	return func(s string) error {
		if err := nonEmpty("username")(s); err != nil {
			return err
		}
		if !unique(s, excludeID) {
			return fmt.Errorf("username %q is already taken", s)
		}
		return nil
	}
}
