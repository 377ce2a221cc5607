// Package urllist loads the list of page URLs to scrape.
//
// The list is a plain UTF-8 text file with one URL per line. Leading and
// trailing whitespace is trimmed and blank lines are ignored:
//
//	urls := urllist.Load("urls.txt")
//
// Load never fails. A missing or unreadable file is the same as an empty
// one; use Read to see the underlying error.
package urllist

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultFileName is the list file read from the working directory by default.
const DefaultFileName = "urls.txt"

// Load returns the non-empty, trimmed lines of the file at path in file order.
// It returns an empty list if the file cannot be opened or read.
func Load(path string) []string {
	urls, err := Read(path)
	if err != nil {
		return nil
	}
	return urls
}

// Read is like Load but returns the error instead of an empty list.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read URL list", goerr.V("path", path))
	}
	return Parse(string(data)), nil
}

// Parse splits text into trimmed, non-empty lines.
func Parse(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")

	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
