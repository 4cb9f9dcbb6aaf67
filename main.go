package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Version information
const (
	Version = "1.0.0"
)

const shutdownGrace = 5 * time.Second

func usage() {
	fmt.Println("Usage: flutterserve [serve|init|status|build|version] [config.yaml]")
	fmt.Println("  serve   - Serve the web bundle and the build API (default)")
	fmt.Println("  init    - Write a default configuration file")
	fmt.Println("  status  - Print whether the web bundle has been built")
	fmt.Println("  build   - Run the build script once")
	fmt.Println("  version - Print the version")
	fmt.Println("  config.yaml - Optional path to configuration file (default: config.yaml)")
}

func main() {
	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	configPath := "config.yaml"
	if len(os.Args) > 2 {
		configPath = os.Args[2]
	}

	switch mode {
	case "version":
		fmt.Printf("flutterserve %s\n", Version)
		return
	case "init":
		runInit(configPath)
		return
	case "serve", "status", "build":
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Printf("Invalid mode: %s\n", mode)
		usage()
		os.Exit(1)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	InitializeLogger(config)
	LogDebugf("Configuration loaded from %s", configPath)

	switch mode {
	case "serve":
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		runServe(config, sigChan)
	case "status":
		runStatus(config)
	case "build":
		runBuild(config)
	}
}

// runServe starts the web server and blocks until a shutdown signal
func runServe(config *Config, sigChan chan os.Signal) {
	webServer := NewWebServer(config, NewBuilder(config))

	errChan := make(chan error, 1)
	go func() {
		errChan <- webServer.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			LogFatalf("Web server failed: %v", err)
		}
		return
	case <-sigChan:
	}

	LogInfof("Shutting down web server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := webServer.Shutdown(ctx); err != nil {
		LogWarnf("Shutdown did not complete cleanly: %v", err)
	}
}

// runInit writes the default configuration without touching an existing file
func runInit(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		log.Fatalf("Configuration file %s already exists", configPath)
	}
	if err := SaveConfig(DefaultConfig(), configPath); err != nil {
		log.Fatalf("Failed to write configuration: %v", err)
	}
	fmt.Printf("Default configuration written to %s\n", configPath)
}

// runStatus prints the bundle status report as JSON
func runStatus(config *Config) {
	status := ProbeBundle(config.Bundle.Dir, config.Bundle.EntryFile)
	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		LogFatalf("Failed to encode status: %v", err)
	}
	fmt.Println(string(data))
}

// runBuild runs the build script once from the terminal
func runBuild(config *Config) {
	result := NewBuilder(config).Run()
	if !result.Success {
		fmt.Fprintf(os.Stderr, "%s: %s\n%s", result.Message, result.Error, result.Details)
		os.Exit(1)
	}
	fmt.Print(result.Output)
	fmt.Println(result.Message)
}
