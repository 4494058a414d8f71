// Package dotenv loads KEY=VALUE files into the process environment.
package dotenv

import (
	"bufio"
	"os"
	"strings"
)

// Load reads path (e.g. ".env") and sets each KEY=VALUE whose key starts with prefix.
// Variables already present in the environment are left alone. Empty lines, lines
// starting with # and an optional leading "export " are handled. A missing file is not
// an error. It returns how many variables were set.
func Load(path, prefix string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	set := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || !strings.HasPrefix(key, prefix) {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		// Remove surrounding quotes if present
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		if err := os.Setenv(key, value); err != nil {
			return set, err
		}
		set++
	}
	return set, scanner.Err()
}
