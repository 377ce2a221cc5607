// Package ioutils provides file writing utilities for downloads.
//
// This package contains:
//   - Chunked copying that separates read failures from write failures
//   - Destination files with optional atomic (write then rename) semantics
//
// # Chunked Copy
//
//	f, err := ioutils.CreateFile("/podcasts/episode.mp3", false)
//	if err != nil {
//	    return err
//	}
//	if _, err := ioutils.CopyChunks(f, resp.Body, 1024); err != nil {
//	    f.Abort()
//	    return err
//	}
//	return f.Commit()
//
// # Atomic Writes
//
// With atomic set, bytes are written to "<path>.part" and renamed to
// path on Commit, so a failed download never leaves a truncated file
// under the final name.
package ioutils
