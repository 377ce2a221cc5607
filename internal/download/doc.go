// Package download provides the pipeline that turns a list of page URLs
// into downloaded media files.
//
// # Manager
//
// The Manager coordinates the whole run:
//
//  1. Fetch each page URL in order
//  2. Extract media URLs with the configured media.Pattern
//  3. Stream each media URL into the destination folder
//  4. Tag files and write a playlist (both optional)
//
// # Basic Usage
//
//	manager, err := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Printf("%s: %s\n", event.Message, event.URL)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Scrape(ctx, urls, settings.DestinationFolder); err != nil {
//	    log.Fatal(err) // transport failure
//	}
//
// # Failure Handling
//
// Failures are isolated per item and never retried:
//   - A page that does not answer 200 OK is reported and skipped
//   - A file that cannot be written, or whose body breaks off, is reported
//     and skipped
//   - A request that cannot be sent, or a page body that cannot be read,
//     aborts the run
//
// # Concurrency
//
// None. Pages and files are processed one at a time on the calling goroutine.
package download
