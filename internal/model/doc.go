// Package model defines the core data structures used throughout
// planetmoney-dl.
//
// # Episode
//
// Episode represents one media file found on a scraped page:
//
//	ep := model.NewEpisode(mediaURL, destFolder)
//	fmt.Println(ep.FileName) // Final segment of the URL
//	fmt.Println(ep.Path)     // Where the file will be written
//
// Metadata such as the show slug and the release month is filled in by
// the media package when the URL matches a known pattern.
package model
