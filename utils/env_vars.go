package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type envTypes interface {
	string | int | bool | float64
}

// GetEnv returns the value of the environment variable, or defaultValue if it is
// unset or empty. It panics if the value cannot be converted to T.
func GetEnv[T envTypes](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, envValue)
}

// GetRequiredEnv stops the process if the environment variable is unset.
func GetRequiredEnv[T envTypes](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnv[T](envVar, envValue)
}

func parseEnv[T envTypes](envVar, envValue string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("Environment variable %s is not valid: '%s' is not an integer", envVar, envValue))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("Environment variable %s is not valid: '%s' is not a boolean", envVar, envValue))
		}
		*ptr = boolValue
	case *float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			panic(fmt.Sprintf("Environment variable %s is not valid: '%s' is not a number", envVar, envValue))
		}
		*ptr = floatValue
	}
	return out
}
