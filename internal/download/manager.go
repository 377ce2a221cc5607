package download

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/m-mizutani/goerr/v2"

	"github.com/handiism/planetmoney-dl/internal/audio"
	"github.com/handiism/planetmoney-dl/internal/config"
	"github.com/handiism/planetmoney-dl/internal/http"
	ioutils "github.com/handiism/planetmoney-dl/internal/io"
	"github.com/handiism/planetmoney-dl/internal/media"
	"github.com/handiism/planetmoney-dl/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Notice messages.
const (
	MessageDownloaded = "downloaded"
	MessageFailed     = "failed"
	MessageTagFailed  = "tagging failed"
	MessageNoMedia    = "no media found"
)

// ProgressEvent represents a per-item outcome. URL is empty for events
// that are not about a single page or file.
type ProgressEvent struct {
	Message string
	URL     string
	Level   ProgressLevel
}

// Progress holds run counters.
type Progress struct {
	PagesFetched    int
	PagesFailed     int
	FilesDownloaded int
	FilesFailed     int
	BytesWritten    int64
}

// Manager runs the fetch, extract and download pipeline.
//
// Everything happens on the calling goroutine, one page and one file at a
// time.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	pattern    *media.Pattern
	tagger     *audio.Tagger
	playlist   *audio.PlaylistCreator
	logger     *log.Logger

	stats Progress

	onProgress func(ProgressEvent)
}

// Option configures a Manager.
type Option func(*Manager)

// WithHTTPClient replaces the client built from settings.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) {
		m.httpClient = c
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// NewManager creates a new Manager.
//
// The media pattern, chunk size, atomic writes, tagging and playlist
// options all come from settings.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) (*Manager, error) {
	pattern, err := settings.Pattern()
	if err != nil {
		return nil, err
	}

	format, _ := audio.ParsePlaylistFormat(settings.PlaylistFormat)

	m := &Manager{
		settings:   settings,
		httpClient: http.NewClient(settings.HTTPOptions()...),
		pattern:    pattern,
		tagger:     audio.NewTagger(audio.DefaultTagConfig()),
		playlist:   audio.NewPlaylistCreator(format, settings.M3UExtended),
		logger:     log.New(io.Discard),
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Pattern returns the media pattern in use.
func (m *Manager) Pattern() *media.Pattern {
	return m.pattern
}

// Progress returns the counters of the run so far.
func (m *Manager) Progress() Progress {
	return m.stats
}

// Scrape fetches every page URL in order and downloads the media it links to.
//
// A page answering anything but 200 OK produces a failure notice and is
// skipped. A file that cannot be written, or whose body breaks off
// midway, produces a failure notice and the run continues with the next
// file. Errors sending a request or reading a page are returned at once
// and end the run.
func (m *Manager) Scrape(ctx context.Context, pageURLs []string, destFolder string) error {
	var downloaded []*model.Episode

	for _, pageURL := range pageURLs {
		episodes, err := m.ScrapePage(ctx, pageURL, destFolder)
		downloaded = append(downloaded, episodes...)
		if err != nil {
			return err
		}
	}

	if m.settings.CreatePlaylist && len(downloaded) > 0 {
		m.writePlaylist(destFolder, downloaded)
	}

	return nil
}

// ScrapePage fetches one page and downloads every media URL found on it.
// It returns the episodes that were written successfully.
func (m *Manager) ScrapePage(ctx context.Context, pageURL, destFolder string) ([]*model.Episode, error) {
	m.logger.Debug("fetching page", "url", pageURL)

	text, err := m.httpClient.GetString(ctx, pageURL)
	if err != nil {
		var se *http.StatusError
		if errors.As(err, &se) {
			m.stats.PagesFailed++
			m.logger.Debug("page not available", "url", pageURL, "status", se.StatusCode)
			m.progress(ProgressEvent{Message: MessageFailed, URL: pageURL, Level: LevelError})
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to fetch page", goerr.V("url", pageURL))
	}
	m.stats.PagesFetched++

	mediaURLs := m.ExtractMediaURLs(text)
	m.logger.Debug("extracted media links", "url", pageURL, "count", len(mediaURLs), "pattern", m.pattern.Name())
	if len(mediaURLs) == 0 {
		m.progress(ProgressEvent{Message: MessageNoMedia, URL: pageURL, Level: LevelVerbose})
	}

	var episodes []*model.Episode
	for _, mediaURL := range mediaURLs {
		ep, err := m.Download(ctx, mediaURL, destFolder)
		if err != nil {
			return episodes, err
		}
		if ep != nil {
			episodes = append(episodes, ep)
		}
	}

	return episodes, nil
}

// ExtractMediaURLs returns the media URLs in text, in order, duplicates kept.
func (m *Manager) ExtractMediaURLs(text string) []string {
	return m.pattern.FindAll(text)
}

// Download streams mediaURL into destFolder under its final path segment.
//
// If writing the file or reading the body fails partway, it emits a
// failure notice and returns (nil, nil); whatever was written stays on
// disk unless atomic writes are enabled. On success it emits a success
// notice and returns the episode. An error sending the request is
// returned wrapped with the URL.
func (m *Manager) Download(ctx context.Context, mediaURL, destFolder string) (*model.Episode, error) {
	ep := m.pattern.Episode(mediaURL, destFolder)

	resp, err := m.httpClient.Open(ctx, mediaURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download media", goerr.V("url", mediaURL))
	}
	defer resp.Body.Close()

	m.logger.Debug("downloading", "url", mediaURL, "path", ep.Path, "status", resp.StatusCode, "size", resp.ContentLength)

	written, err := m.save(ep.Path, resp.Body, resp.ContentLength)
	m.stats.BytesWritten += written
	if err != nil {
		m.stats.FilesFailed++
		var rerr *ioutils.ReadError
		if errors.As(err, &rerr) {
			m.logger.Debug("failed to read media body", "url", mediaURL, "path", ep.Path, "error", rerr.Err)
		} else {
			m.logger.Debug("failed to write file", "url", mediaURL, "path", ep.Path, "error", err)
		}
		m.progress(ProgressEvent{Message: MessageFailed, URL: mediaURL, Level: LevelError})
		return nil, nil
	}

	m.stats.FilesDownloaded++

	m.progress(ProgressEvent{Message: MessageDownloaded, URL: mediaURL, Level: LevelSuccess})

	if m.settings.ModifyTags {
		if err := m.tagger.SaveTags(ep); err != nil {
			m.logger.Debug("failed to tag file", "path", ep.Path, "error", err)
			m.progress(ProgressEvent{Message: MessageTagFailed, URL: mediaURL, Level: LevelWarning})
		}
	}
	return ep, nil
}

// save writes body to path in fixed-size chunks.
//
// Read errors come back as *ioutils.ReadError, write errors as
// *ioutils.WriteError.
func (m *Manager) save(path string, body io.Reader, total int64) (int64, error) {
	file, err := ioutils.CreateFile(path, m.settings.AtomicWrites)
	if err != nil {
		return 0, err
	}

	pw := &http.ProgressWriter{
		Writer: file,
		Total:  total,
	}

	if _, err := ioutils.CopyChunks(pw, body, m.settings.ChunkSize); err != nil {
		file.Abort()
		return pw.Written, err
	}

	if err := file.Commit(); err != nil {
		return pw.Written, err
	}

	return pw.Written, nil
}

func (m *Manager) writePlaylist(destFolder string, episodes []*model.Episode) {
	path := model.PlaylistPath(destFolder, m.settings.PlaylistFileName, m.playlist.Format().Extension())
	content := m.playlist.CreatePlaylist(m.settings.PlaylistFileName, episodes)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		m.logger.Debug("failed to write playlist", "path", path, "error", err)
		m.progress(ProgressEvent{Message: "failed to write playlist " + path, Level: LevelWarning})
		return
	}
	m.logger.Debug("created playlist", "path", path, "entries", len(episodes))
	m.progress(ProgressEvent{Message: "created playlist " + path, Level: LevelInfo})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
