// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var envLoaded = false

// ArgValue returns the value following flag in the process arguments, as in
// "--env-file .env".
func ArgValue(args []string, flag string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if value, ok := strings.CutPrefix(arg, flag+"="); ok {
			return value
		}
	}
	return ""
}

func LoadEnvFile() {
	if envLoaded {
		return
	}
	envLoaded = true
	envFile := ArgValue(os.Args[1:], "--env-file")
	if envFile == "" {
		return
	}
	if err := loadEnvFrom(envFile); err != nil {
		fmt.Printf("Failed to load env file: %s\n", err)
	}
}

func loadEnvFrom(envFile string) error {
	file, err := os.Open(envFile)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if os.Getenv(key) == "" {
			os.Setenv(key, val)
		}
	}
	return scanner.Err()
}

// GetEnv returns the variable, or the first fallback when it is unset.
func GetEnv(key string, fallback ...string) string {
	LoadEnvFile()
	if value := os.Getenv(key); value != "" {
		return value
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

func GetEnvInt(key string, fallback int) int {
	if value := GetEnv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		Logger.Warnf("Ignoring non-numeric %s=%q", key, value)
	}
	return fallback
}

func GetEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(GetEnv(key)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return fallback
}
