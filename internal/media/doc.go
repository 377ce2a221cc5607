// Package media finds downloadable audio links in page text.
//
// Links are recognized by a named Pattern rather than by parsing the
// page, so the package works on any text regardless of markup:
//
//	urls := media.DefaultPattern.FindAll(pageText)
//	for _, u := range urls {
//	    ep := media.DefaultPattern.Episode(u, destFolder)
//	    fmt.Println(ep.Show, ep.Year, ep.Month, ep.FileName)
//	}
//
// Built-in patterns are looked up by name, which lets the configuration
// pin a pattern version:
//
//	p, ok := media.Lookup("npr-2016")
package media
