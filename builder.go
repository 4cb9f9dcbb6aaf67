package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// lookPath is swapped in tests to simulate hosts without bash.
var lookPath = exec.LookPath

const (
	buildSucceededMessage = "Build completed successfully"
	buildFailedMessage    = "Build failed"
)

// Builder runs the external build script. It holds no mutable state, so
// concurrent Run calls each spawn their own independent process.
type Builder struct {
	command   string
	workDir   string
	bundleDir string
	envVars   map[string]string
}

// NewBuilder creates a builder from the build and bundle configuration
func NewBuilder(config *Config) *Builder {
	return &Builder{
		command:   config.Build.Command,
		workDir:   config.Build.WorkDir,
		bundleDir: config.Bundle.Dir,
		envVars:   config.Build.EnvVars,
	}
}

// Run executes the build script to completion and reports the outcome.
// Only the exit status decides success; stderr output on a zero exit is
// logged as a warning and otherwise ignored.
func (b *Builder) Run() BuildResult {
	start := time.Now()
	result := BuildResult{ID: uuid.NewString()}

	LogInfof("Build %s: running %s", result.ID, b.command)

	var stdout, stderr bytes.Buffer
	cmd := b.buildCommand()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stderr = stderr.String()

	if err != nil {
		result.Success = false
		result.Message = buildFailedMessage
		result.Error = err.Error()
		result.Details = result.Stderr
		LogErrorf("Build %s failed after %v: %v", result.ID, result.Duration, err)
		if result.Stderr != "" {
			LogErrorf("Build %s stderr: %s", result.ID, result.Stderr)
		}
		return result
	}

	result.Success = true
	result.Message = buildSucceededMessage
	result.Output = stdout.String()

	LogInfof("Build %s completed in %v", result.ID, result.Duration)
	LogDebugf("Build %s output: %s", result.ID, result.Output)
	if result.Stderr != "" {
		LogWarnf("Build %s stderr: %s", result.ID, result.Stderr)
	}

	return result
}

// buildCommand picks an interpreter from the script extension. The script
// itself never receives arguments.
func (b *Builder) buildCommand() *exec.Cmd {
	script := b.command

	var cmd *exec.Cmd
	switch strings.ToLower(filepath.Ext(script)) {
	case ".bat", ".cmd":
		cmd = exec.Command("cmd", "/C", script)
	case ".sh":
		// Without bash the script runs directly and its shebang picks the shell.
		if _, err := lookPath("bash"); err == nil {
			cmd = exec.Command("bash", script)
		} else {
			cmd = exec.Command(script)
		}
	case ".ps1":
		cmd = exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-File", script)
	case ".py":
		cmd = exec.Command("python", script)
	default:
		cmd = exec.Command(script)
	}

	// Relative script paths resolve against Dir.
	cmd.Dir = b.workDir

	cmd.Env = os.Environ()
	for key, value := range b.envVars {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}
	cmd.Env = append(cmd.Env, fmt.Sprintf("FLUTTERSERVE_BUNDLE_DIR=%s", b.bundleDirAbs()))

	return cmd
}

func (b *Builder) bundleDirAbs() string {
	abs, err := filepath.Abs(b.bundleDir)
	if err != nil {
		return b.bundleDir
	}
	return abs
}
