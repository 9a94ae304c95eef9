package repository

import "os"

// tableNameFromEnv resolves a DynamoDB table name, letting deployments
// override the default via environment.
func tableNameFromEnv(envKey, def string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}
