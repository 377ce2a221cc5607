package ioutils

import (
	"errors"
	"io"
	"os"
)

// DefaultChunkSize is the number of bytes copied per read when no size is given.
const DefaultChunkSize = 1024

// PartialSuffix is appended to the target name while an atomic write is in progress.
const PartialSuffix = ".part"

// ReadError reports a failure reading the source of a copy.
//
// For downloads this is a network failure, not a filesystem one.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "read: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure writing the destination of a copy.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// CopyChunks copies src to dst in chunks of chunkSize bytes.
//
// Empty chunks are skipped. Errors from src are returned as *ReadError and
// errors from dst as *WriteError so callers can tell them apart with
// errors.As. A chunkSize <= 0 uses DefaultChunkSize.
//
// Example:
//
//	n, err := CopyChunks(file, resp.Body, 1024)
//	var werr *WriteError
//	if errors.As(err, &werr) {
//	    // disk full, permission denied, ...
//	}
func CopyChunks(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, &WriteError{Err: werr}
			}
			if w != n {
				return written, &WriteError{Err: io.ErrShortWrite}
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return written, nil
			}
			return written, &ReadError{Err: rerr}
		}
	}
}

// File is a destination file opened for binary writing.
//
// In direct mode the bytes go straight to the target path and a failed
// write leaves whatever was written so far. In atomic mode they go to
// target+PartialSuffix, which is renamed over the target by Commit and
// removed by Abort.
type File struct {
	f      *os.File
	target string
	atomic bool
}

// CreateFile creates (or truncates) the file for path.
//
// Parameters:
//   - path: final file path
//   - atomic: write to a temporary sibling and rename on Commit
//
// The parent directory must already exist.
func CreateFile(path string, atomic bool) (*File, error) {
	name := path
	if atomic {
		name = path + PartialSuffix
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}

	return &File{f: f, target: path, atomic: atomic}, nil
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

// Name returns the path currently being written.
func (f *File) Name() string {
	return f.f.Name()
}

// Commit closes the file and, in atomic mode, moves it to its final path.
func (f *File) Commit() error {
	if err := f.f.Close(); err != nil {
		if f.atomic {
			os.Remove(f.f.Name())
		}
		return err
	}

	if !f.atomic {
		return nil
	}

	if err := os.Rename(f.f.Name(), f.target); err != nil {
		os.Remove(f.f.Name())
		return err
	}
	return nil
}

// Abort closes the file after a failed write.
//
// In direct mode the partial file is left in place. In atomic mode the
// temporary file is removed.
func (f *File) Abort() {
	f.f.Close()
	if f.atomic {
		os.Remove(f.f.Name())
	}
}
