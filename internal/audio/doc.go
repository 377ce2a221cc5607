// Package audio provides post-download services for episode files:
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(episode)
//
// Tags are derived from the media URL alone: title from the file name,
// album from the show slug, year and date from the file name prefix.
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("Planet Money", episodes)
//	os.WriteFile("planetmoney.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
