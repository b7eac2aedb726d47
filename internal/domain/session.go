package domain

import (
	"errors"
	"fmt"
	"strings"
)

const sessionSecretPrefix = "mcart/session"

// SessionSecretKey names the stored storefront session credential for host.
func SessionSecretKey(host string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(host))
	if normalized == "" {
		return "", errors.New("session host is required")
	}
	if strings.ContainsAny(normalized, "/\\ ") || strings.Contains(normalized, "..") {
		return "", fmt.Errorf("invalid session host %q", host)
	}

	return sessionSecretPrefix + "/" + normalized, nil
}
