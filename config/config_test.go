package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    Config
		wantErr string
	}{
		{
			name: "empty keeps defaults",
			src:  ``,
			want: *Default(),
		},
		{
			name: "all fields",
			src:  "format: yaml\nexplain: true\nsummary: true\nworkers: 4\ndeny_overlap: true\ndebounce: 250ms\n",
			want: Config{Format: FormatYAML, Explain: true, Summary: true, Workers: 4, DenyOverlap: true, Debounce: 250 * time.Millisecond},
		},
		{
			name: "partial",
			src:  "explain: true\n",
			want: Config{Format: FormatText, Explain: true, Workers: 1, Debounce: 100 * time.Millisecond},
		},
		{name: "unknown key", src: "colour: red\n", wantErr: "colour"},
		{name: "bad format", src: "format: json\n", wantErr: `unknown format "json"`},
		{name: "bad workers", src: "workers: 0\n", wantErr: "workers must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.src))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Read() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negcoh.yaml")
	if err := os.WriteFile(path, []byte("workers: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load() of a missing file succeeded")
	}
}
