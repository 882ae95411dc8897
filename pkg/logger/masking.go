package logger

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"regexp"
)

var secretPattern = regexp.MustCompile(`(?i)(key|token|secret|authorization)([=:]\s*)[^\s&]+`)

// MaskEndpoint keeps the host of an API endpoint and replaces the rest with a short hash
func MaskEndpoint(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	hash := shortHash(rawURL)
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "api-endpoint#" + hash
	}
	return fmt.Sprintf("%s/api#%s", parsed.Host, hash)
}

// MaskSecrets hides key=value style credentials inside free text
func MaskSecrets(message string) string {
	return secretPattern.ReplaceAllString(message, "${1}${2}***")
}

func shortHash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum[:4])
}
