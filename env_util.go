package userdesk

import "os"

// GetEnvOrDefault reads an environment variable with a fallback. The
// contrib commands use it for USERDESK_ENDPOINT.
func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
