package config

import (
	"errors"
	"strings"
)

var errJWTSecretMissing = errors.New("JWT_SECRET is empty")

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
