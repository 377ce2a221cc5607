package model

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Episode represents a single downloadable audio file found on a page.
//
// Episode contains:
//   - The media URL it was found under
//   - The output file name and path inside the destination folder
//   - Metadata recovered from the URL (show slug, year, month)
//
// The file name is always the part of the URL after the last slash, so
// two URLs that share a final segment map to the same file.
//
// Example:
//
//	ep := NewEpisode("http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_up_first.mp3", "/podcasts")
//	// ep.FileName = "20160115_up_first.mp3"
//	// ep.Path     = "/podcasts/20160115_up_first.mp3"
type Episode struct {
	// URL is the media URL the file is downloaded from.
	URL string

	// FileName is the final path segment of URL.
	FileName string

	// Path is the local file path: the destination folder joined with FileName.
	Path string

	// Show is the show slug from the URL (e.g. "money"). Empty if unknown.
	Show string

	// Year and Month are the date segments from the URL. Empty if unknown.
	Year  string
	Month string
}

// NewEpisode creates an Episode for mediaURL saved under destFolder.
func NewEpisode(mediaURL, destFolder string) *Episode {
	fileName := FileNameFromURL(mediaURL)
	return &Episode{
		URL:      mediaURL,
		FileName: fileName,
		Path:     filepath.Join(destFolder, fileName),
	}
}

// FileNameFromURL returns the substring after the last '/' in rawURL.
// A URL without a slash is returned unchanged.
func FileNameFromURL(rawURL string) string {
	return rawURL[strings.LastIndex(rawURL, "/")+1:]
}

// Title returns the file name without its extension.
func (e *Episode) Title() string {
	return strings.TrimSuffix(e.FileName, filepath.Ext(e.FileName))
}

// ReleaseDate parses the leading YYYYMMDD digits of the file name.
// The second return value is false if the file name has no such prefix.
func (e *Episode) ReleaseDate() (time.Time, bool) {
	if len(e.FileName) < 8 {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", e.FileName[:8])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PlaylistPath computes the playlist file path inside destFolder.
//
// Invalid filename characters in name are replaced with underscores and
// ext (including the dot) is appended.
func PlaylistPath(destFolder, name, ext string) string {
	return filepath.Join(destFolder, sanitizeFileName(name)+ext)
}

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	repeatedSpace = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
