package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

// testConfig returns a valid config whose bundle dir lives in a temp dir
// and does not exist yet.
func testConfig(t *testing.T) *Config {
	t.Helper()
	root := t.TempDir()

	config := DefaultConfig()
	config.Server.Host = "127.0.0.1"
	config.Bundle.Dir = filepath.Join(root, "web")
	config.Build.Command = filepath.Join(root, "missing-build-script")
	return config
}

// writeBundle creates the bundle directory with the given files.
func writeBundle(t *testing.T, config *Config, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(config.Bundle.Dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	if err := os.MkdirAll(config.Bundle.Dir, 0755); err != nil {
		t.Fatalf("Failed to create bundle dir: %v", err)
	}
}
