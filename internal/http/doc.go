// Package http provides the HTTP client used to fetch pages and media.
//
// The Client in this package handles:
//   - Whole-body page fetches that report non-200 answers as *StatusError
//   - Streaming fetches for large media files
//   - Optional User-Agent header and timeout
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch HTML page
//	html, err := client.GetString(ctx, pageURL)
//	var se *http.StatusError
//	if errors.As(err, &se) {
//	    // the server answered, but not with 200 OK
//	}
//
//	// Stream a file
//	resp, err := client.Open(ctx, mp3URL)
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* log */ },
//	}
package http
