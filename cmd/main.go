package main

import (
	"fmt"
	"io"
	"os"

	"email-ticket-analyzer/internal/config"
	"email-ticket-analyzer/internal/emailprocessor"
	"email-ticket-analyzer/internal/logging"
	"email-ticket-analyzer/internal/models"
	"email-ticket-analyzer/internal/report"
)

const configPath = "config.yaml"

func main() {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	if err := logging.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logging.Log.Fatalf("Error configuring logger: %v", err)
	}

	source, data, err := readInput(os.Args[1:], cfg, os.Stdin)
	if err != nil {
		logging.Log.Fatalf("Error reading email data: %v", err)
	}

	logging.Log.Infof("Analyzing email data from %s", source)

	result := emailprocessor.Analyze(data)
	fmt.Print(report.Render(result))
}

// readInput picks the dump to analyze: the first argument ("-" for stdin),
// then the configured input file, then the built-in sample
func readInput(args []string, cfg *models.Config, stdin io.Reader) (string, string, error) {
	path := cfg.Input.File
	if len(args) > 0 {
		path = args[0]
	}

	switch path {
	case "":
		return "built-in sample", sampleData, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return path, string(data), nil
}
