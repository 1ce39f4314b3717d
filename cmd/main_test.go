package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"email-ticket-analyzer/internal/config"
	"email-ticket-analyzer/internal/emailprocessor"
	"email-ticket-analyzer/internal/report"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	argFile := filepath.Join(dir, "arg.txt")
	cfgFile := filepath.Join(dir, "cfg.txt")
	if err := os.WriteFile(argFile, []byte("from arg"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", argFile, err)
	}
	if err := os.WriteFile(cfgFile, []byte("from config"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", cfgFile, err)
	}

	tests := []struct {
		name       string
		args       []string
		cfgFile    string
		wantSource string
		wantData   string
		wantErr    bool
	}{
		{name: "Built-in sample", wantSource: "built-in sample", wantData: sampleData},
		{name: "Config file", cfgFile: cfgFile, wantSource: cfgFile, wantData: "from config"},
		{name: "Argument wins over config", args: []string{argFile}, cfgFile: cfgFile, wantSource: argFile, wantData: "from arg"},
		{name: "Stdin", args: []string{"-"}, wantSource: "stdin", wantData: "piped"},
		{name: "Missing file", args: []string{filepath.Join(dir, "nope.txt")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Input.File = tt.cfgFile

			source, data, err := readInput(tt.args, cfg, strings.NewReader("piped"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("readInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			if data != tt.wantData {
				t.Errorf("data = %q, want %q", data, tt.wantData)
			}
		})
	}
}

func TestSampleReport(t *testing.T) {
	got := report.Render(emailprocessor.Analyze(sampleData))

	if !strings.Contains(got, "Most Frequent Sender: user1@example.com (2 tickets)\n") {
		t.Errorf("Unexpected sender line in report:\n%s", got)
	}
	if !strings.HasSuffix(got, "Total Emails Processed: 5\n") {
		t.Errorf("Unexpected total line in report:\n%s", got)
	}
}
