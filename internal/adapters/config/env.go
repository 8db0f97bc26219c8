package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv treats unset and blank variables alike.
func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func getIntEnv(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getSecondsEnv reads a whole number of seconds. Negative values fall back to the default.
func getSecondsEnv(key string, defaultSeconds int) time.Duration {
	seconds := getIntEnv(key, defaultSeconds)
	if seconds < 0 {
		seconds = defaultSeconds
	}
	return time.Duration(seconds) * time.Second
}

func getStringEnv(key string, defaultValue string) string {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

// only the literal "true" enables a flag
func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value == "true"
}
