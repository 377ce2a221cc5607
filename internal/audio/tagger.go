package audio

import (
	"github.com/bogem/id3v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/handiism/planetmoney-dl/internal/model"
)

// DefaultArtist is written to the artist frames of tagged episodes.
const DefaultArtist = "NPR"

// TagConfig holds tagging configuration.
//
// Example:
//
//	cfg := &TagConfig{
//	    Artist:       "NPR",
//	    AlbumFromShow: true, // "money" becomes the album title
//	}
type TagConfig struct {
	// Artist is written to TPE1 and TPE2. Empty leaves them untouched.
	Artist string

	// AlbumFromShow writes the show slug to TALB.
	AlbumFromShow bool
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Artist:        DefaultArtist,
		AlbumFromShow: true,
	}
}

// Tagger writes ID3 tags to downloaded MP3 files.
//
// Everything it writes is recovered from the media URL: the title from
// the file name, the album from the show slug and the dates from the
// YYYYMMDD file name prefix.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	if err := tagger.SaveTags(episode); err != nil {
//	    logger.Warn("failed to tag", "path", episode.Path, "error", err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the episode's file.
//
// Returns an error if the file cannot be opened or saved.
func (t *Tagger) SaveTags(ep *model.Episode) error {
	tag, err := id3v2.Open(ep.Path, id3v2.Options{Parse: true})
	if err != nil {
		return goerr.Wrap(err, "failed to open MP3 for tagging", goerr.V("path", ep.Path))
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	t.updateStringTags(tag, ep)

	if err := tag.Save(); err != nil {
		return goerr.Wrap(err, "failed to save tags", goerr.V("path", ep.Path))
	}
	return nil
}

// updateStringTags updates text-based ID3 frames.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, ep *model.Episode) {
	// Track Title (TIT2)
	tag.SetTitle(ep.Title())

	// Artist (TPE1) and Album Artist (TPE2)
	if t.config.Artist != "" {
		tag.SetArtist(t.config.Artist)
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, t.config.Artist)
	}

	// Album (TALB)
	if t.config.AlbumFromShow && ep.Show != "" {
		tag.SetAlbum(ep.Show)
	}

	// Year (TYER) - ID3v2.3, Date (TDRC) - ID3v2.4
	if date, ok := ep.ReleaseDate(); ok {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, date.Format("2006"))
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, date.Format("2006-01-02"))
	} else if ep.Year != "" {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, ep.Year)
	}
}
