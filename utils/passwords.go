package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*]`)
)

// CheckPasswordStrength enforces the registration password rules. The
// returned message is user-facing.
func CheckPasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("Password too short")
	}
	if !upperRe.MatchString(password) {
		return fmt.Errorf("Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		return fmt.Errorf("Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return fmt.Errorf("Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		return fmt.Errorf("Password must contain at least one special character")
	}
	return nil
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomPassword builds the throwaway password handed out by the
// reset flow.
func GenerateRandomPassword(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	out := make([]byte, length)
	for i := range out {
		out[i] = passwordAlphabet[rng.Intn(len(passwordAlphabet))]
	}
	return string(out)
}
