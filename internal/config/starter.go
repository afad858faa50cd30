package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterTemplate = `# shipit configuration
# Values here override the built-in defaults; SHIPIT_* environment
# variables override both (e.g. SHIPIT_REMOTE_URL, SHIPIT_BRANCH).

branch = "main"

[remote]
name = "origin"
url = ""

[ignore]
# When true, .gitignore is overwritten with the configured patterns on
# every run. Leave patterns empty to use the built-in template.
write = true

[browser]
open = true
`

// WriteStarter writes a commented starter config file into dir.
// Refuses to overwrite an existing file.
func WriteStarter(dir string) (string, error) {
	path := filepath.Join(dir, FileName+".toml")
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(starterTemplate), 0o644); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
