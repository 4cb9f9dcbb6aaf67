package main

import (
	"os"
	"path/filepath"
)

const (
	bundleReadyMessage      = "Flutter web application is ready to serve"
	bundleNeedsBuildMessage = "Flutter web application needs to be built"
)

// ProbeBundle reports whether the bundle directory and its entry file exist.
// It is recomputed on every call; absence is a normal state, not an error.
func ProbeBundle(bundleDir, entryFile string) StatusReport {
	dirExists := isDir(bundleDir)
	entryExists := dirExists && isFile(filepath.Join(bundleDir, entryFile))

	message := bundleNeedsBuildMessage
	if entryExists {
		message = bundleReadyMessage
	}

	return StatusReport{
		Status:             "ok",
		WebDirectoryExists: dirExists,
		IndexFileExists:    entryExists,
		Message:            message,
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
