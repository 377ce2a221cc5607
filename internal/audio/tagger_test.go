package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/handiism/planetmoney-dl/internal/model"
)

func TestTagger_SaveTags(t *testing.T) {
	dir := t.TempDir()
	ep := model.NewEpisode("http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_up_first.mp3", dir)
	ep.Show = "money"
	ep.Year = "2016"
	ep.Month = "01"

	audioData := []byte("not really mpeg frames")
	if err := os.WriteFile(ep.Path, audioData, 0644); err != nil {
		t.Fatalf("failed to write episode: %v", err)
	}

	if err := NewTagger(nil).SaveTags(ep); err != nil {
		t.Fatalf("SaveTags() error = %v", err)
	}

	tag, err := id3v2.Open(ep.Path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to reopen tags: %v", err)
	}
	defer tag.Close()

	if tag.Title() != "20160115_up_first" {
		t.Errorf("Title = %q, want %q", tag.Title(), "20160115_up_first")
	}
	if tag.Artist() != DefaultArtist {
		t.Errorf("Artist = %q, want %q", tag.Artist(), DefaultArtist)
	}
	if tag.Album() != "money" {
		t.Errorf("Album = %q, want %q", tag.Album(), "money")
	}
	if got := tag.GetTextFrame("TYER").Text; got != "2016" {
		t.Errorf("TYER = %q, want %q", got, "2016")
	}
}

func TestTagger_SaveTags_MissingFile(t *testing.T) {
	ep := model.NewEpisode("http://example.com/20160115_x.mp3", filepath.Join(t.TempDir(), "missing"))

	if err := NewTagger(DefaultTagConfig()).SaveTags(ep); err == nil {
		t.Error("expected error for missing file")
	}
}
