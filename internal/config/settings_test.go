package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/handiism/planetmoney-dl/internal/media"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.DestinationFolder != "." {
		t.Errorf("DestinationFolder = %q, want %q", s.DestinationFolder, ".")
	}
	if s.URLListPath != "urls.txt" {
		t.Errorf("URLListPath = %q, want %q", s.URLListPath, "urls.txt")
	}
	if s.ChunkSize != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", s.ChunkSize)
	}
	if s.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0", s.Timeout())
	}
	if s.AtomicWrites || s.ModifyTags || s.CreatePlaylist {
		t.Error("optional features should be off by default")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ChunkSize != 1024 {
		t.Errorf("ChunkSize = %d, want default", s.ChunkSize)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() should fail for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want fs.ErrNotExist", err)
	}
	if s != nil {
		t.Error("LoadFile() should not return settings on error")
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"destination_folder": "/podcasts", "atomic_writes": true, "http_timeout": 2.5}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.DestinationFolder != "/podcasts" {
		t.Errorf("DestinationFolder = %q, want %q", s.DestinationFolder, "/podcasts")
	}
	if !s.AtomicWrites {
		t.Error("AtomicWrites should be true")
	}
	if s.Timeout() != 2500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 2.5s", s.Timeout())
	}
	if s.URLListPath != "urls.txt" {
		t.Errorf("URLListPath = %q, want default", s.URLListPath)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"destination_folder": `},
		{"zero chunk size", `{"chunk_size": 0}`},
		{"negative timeout", `{"http_timeout": -1}`},
		{"unknown pattern", `{"media_pattern": "npr-1999"}`},
		{"broken expression", `{"media_pattern_expr": "http://("}`},
		{"unknown log level", `{"log_level": "loud"}`},
		{"unknown playlist format", `{"playlist_format": "xspf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			if _, err := Load(path); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.DestinationFolder = "/podcasts"
	s.CreatePlaylist = true
	s.PlaylistFormat = "pls"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *s {
		t.Errorf("Load() = %+v, want %+v", loaded, s)
	}
}

func TestSettings_Pattern(t *testing.T) {
	s := DefaultSettings()
	p, err := s.Pattern()
	if err != nil {
		t.Fatalf("Pattern() error = %v", err)
	}
	if p != media.NPR2016 {
		t.Errorf("Pattern() = %s, want npr-2016", p.Name())
	}

	s.MediaPattern = ""
	if p, _ := s.Pattern(); p != media.DefaultPattern {
		t.Error("empty media_pattern should use the default pattern")
	}

	s.MediaPatternExpr = `http://example\.com/\d+\.mp3`
	p, err = s.Pattern()
	if err != nil {
		t.Fatalf("Pattern() error = %v", err)
	}
	if p.Name() != "custom" {
		t.Errorf("Pattern().Name() = %q, want %q", p.Name(), "custom")
	}
	if !p.Match("http://example.com/42.mp3") {
		t.Error("custom pattern should match")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "INFO")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}

	logger.Debug("hidden")
	logger.Info("shown", "url", "http://example.com")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message should be written")
	}

	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}
