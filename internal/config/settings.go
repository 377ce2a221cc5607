package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/handiism/planetmoney-dl/internal/http"
	"github.com/handiism/planetmoney-dl/internal/media"
	"github.com/handiism/planetmoney-dl/internal/urllist"
)

// DefaultFileName is the config file looked up in the working directory
// when none is named.
const DefaultFileName = "planetmoney-dl.json"

// Settings holds all configuration options.
type Settings struct {
	// Input and output
	DestinationFolder string `json:"destination_folder"`
	URLListPath       string `json:"url_list_path"`

	// Link extraction
	MediaPattern     string `json:"media_pattern"`      // built-in pattern name
	MediaPatternExpr string `json:"media_pattern_expr"` // custom regex, overrides MediaPattern

	// Download settings
	ChunkSize    int     `json:"chunk_size"`
	AtomicWrites bool    `json:"atomic_writes"`
	HTTPTimeout  float64 `json:"http_timeout"` // seconds, 0 = no timeout
	UserAgent    string  `json:"user_agent"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Playlist settings
	CreatePlaylist   bool   `json:"create_playlist"`
	PlaylistFormat   string `json:"playlist_format"` // m3u, pls, wpl, zpl
	PlaylistFileName string `json:"playlist_file_name"`
	M3UExtended      bool   `json:"m3u_extended"`

	// Logging
	LogLevel string `json:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DestinationFolder: ".",
		URLListPath:       urllist.DefaultFileName,

		MediaPattern: media.DefaultPattern.Name(),

		ChunkSize:    1024,
		AtomicWrites: false,
		HTTPTimeout:  0,

		ModifyTags: false,

		CreatePlaylist:   false,
		PlaylistFormat:   "m3u",
		PlaylistFileName: "planetmoney",
		M3UExtended:      true,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON file like LoadFile, except that a
// missing file yields DefaultSettings().
func Load(path string) (*Settings, error) {
	settings, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	return settings, err
}

// LoadFile reads settings from a JSON file that must exist.
//
// Fields missing from the file keep their default values.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config", goerr.V("path", path))
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config", goerr.V("path", path))
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create config directory", goerr.V("dir", dir))
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write config", goerr.V("path", path))
	}
	return nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return goerr.New("chunk_size must be positive", goerr.V("chunk_size", s.ChunkSize))
	}
	if s.HTTPTimeout < 0 {
		return goerr.New("http_timeout must not be negative", goerr.V("http_timeout", s.HTTPTimeout))
	}
	if _, err := s.Pattern(); err != nil {
		return err
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(s.PlaylistFormat) {
	case "m3u", "pls", "wpl", "zpl":
	default:
		return goerr.New("unknown playlist_format", goerr.V("playlist_format", s.PlaylistFormat))
	}
	return nil
}

// Pattern resolves the media pattern.
//
// MediaPatternExpr wins over MediaPattern; an empty MediaPattern means
// media.DefaultPattern.
func (s *Settings) Pattern() (*media.Pattern, error) {
	if s.MediaPatternExpr != "" {
		return media.Compile("custom", s.MediaPatternExpr)
	}
	if s.MediaPattern == "" {
		return media.DefaultPattern, nil
	}

	p, ok := media.Lookup(s.MediaPattern)
	if !ok {
		return nil, goerr.New("unknown media pattern",
			goerr.V("media_pattern", s.MediaPattern),
			goerr.V("known", media.Names()))
	}
	return p, nil
}

// Timeout returns HTTPTimeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.HTTPTimeout * float64(time.Second))
}

// HTTPOptions converts settings to http client options.
func (s *Settings) HTTPOptions() []http.Option {
	return []http.Option{
		http.WithTimeout(s.Timeout()),
		http.WithUserAgent(s.UserAgent),
	}
}
