package config

import (
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFileName is the file the ignore template is written to
const IgnoreFileName = ".gitignore"

// DefaultIgnorePatterns is the fallback ignore template. It covers dependency
// directories, build artifacts, credentials, editor and OS junk, and model
// weight files.
var DefaultIgnorePatterns = []string{
	"# Dependencies",
	"node_modules/",
	"vendor/",
	".venv/",
	"venv/",
	"__pycache__/",
	"*.egg-info/",
	"",
	"# Build artifacts",
	"dist/",
	"build/",
	"out/",
	"*.o",
	"*.so",
	"*.exe",
	"",
	"# Credentials and local config",
	".env",
	".env.*",
	"*.pem",
	"*.key",
	"credentials.json",
	"",
	"# Editor and OS junk",
	".DS_Store",
	"Thumbs.db",
	".idea/",
	".vscode/",
	"*.swp",
	"*~",
	"",
	"# Model weights",
	"*.pt",
	"*.pth",
	"*.bin",
	"*.onnx",
	"*.safetensors",
	"*.gguf",
	"*.ckpt",
	"",
	"# Logs",
	"*.log",
}

// RenderIgnore joins ignore patterns into file content with a trailing newline
func RenderIgnore(patterns []string) string {
	return strings.Join(patterns, "\n") + "\n"
}

// WriteIgnoreFile overwrites the ignore file in dir with the rendered
// patterns. Any pre-existing file is fully replaced, never merged.
func WriteIgnoreFile(dir string, patterns []string) error {
	path := filepath.Join(dir, IgnoreFileName)
	return os.WriteFile(path, []byte(RenderIgnore(patterns)), 0o644)
}
