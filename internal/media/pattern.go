package media

import (
	"regexp"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/handiism/planetmoney-dl/internal/model"
)

// NPR2016Expr matches NPR podcast download links as they appeared in the
// Planet Money archive in 2016:
//
//	http://pd.npr.org/anon.npr-mp3/npr/<show>/<yyyy>/<mm>/<yyyymmdd>....mp3
//
// The literal prefix and the numeric segments are case-sensitive, the show
// slug is letters only. The file part is matched lazily so two links on
// the same line stay separate matches.
const NPR2016Expr = `http://pd\.npr\.org/anon\.npr-mp3/npr/(?P<show>[A-Za-z]+)/(?P<year>\d{4})/(?P<month>\d{2})/(?P<file>\d{8}.+?\.mp3)`

// NPR2016 is the built-in pattern for NPR download links.
var NPR2016 = MustCompile("npr-2016", NPR2016Expr)

// DefaultPattern is the pattern used when nothing else is configured.
var DefaultPattern = NPR2016

var builtins = map[string]*Pattern{
	NPR2016.Name(): NPR2016,
}

// Pattern is a named media link matcher.
//
// A Pattern finds media URLs inside arbitrary page text. Patterns are tied
// to one provider's URL shape at one point in time; when the shape changes
// a new named Pattern is added instead of editing the old one.
//
// Optional named groups "show", "year", "month" and "file" are used by
// Parse to fill in episode metadata.
type Pattern struct {
	name  string
	re    *regexp.Regexp
	whole *regexp.Regexp
}

// Fields holds the named submatches of a media URL.
type Fields struct {
	Show  string
	Year  string
	Month string
	File  string
}

// Compile compiles expr into a Pattern called name.
func Compile(name, expr string) (*Pattern, error) {
	if name == "" {
		return nil, goerr.New("pattern name is empty")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compile media pattern", goerr.V("name", name), goerr.V("expr", expr))
	}
	return &Pattern{
		name:  name,
		re:    re,
		whole: regexp.MustCompile(`^(?:` + expr + `)$`),
	}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(name, expr string) *Pattern {
	p, err := Compile(name, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup returns the built-in pattern with the given name.
func Lookup(name string) (*Pattern, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Names returns the names of all built-in patterns, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the pattern name.
func (p *Pattern) Name() string {
	return p.name
}

// String returns the regular expression source.
func (p *Pattern) String() string {
	return p.re.String()
}

// FindAll returns every non-overlapping match in text, in the order found.
//
// Duplicates are kept: a page that embeds the same link twice yields it
// twice. The result is empty when nothing matches.
func (p *Pattern) FindAll(text string) []string {
	return p.re.FindAllString(text, -1)
}

// Match reports whether s as a whole is a media URL.
func (p *Pattern) Match(s string) bool {
	return p.whole.MatchString(s)
}

// Parse extracts the named fields of mediaURL.
//
// The second return value is false if mediaURL is not a whole match.
func (p *Pattern) Parse(mediaURL string) (Fields, bool) {
	m := p.whole.FindStringSubmatch(mediaURL)
	if m == nil {
		return Fields{}, false
	}

	var f Fields
	for i, name := range p.whole.SubexpNames() {
		switch name {
		case "show":
			f.Show = m[i]
		case "year":
			f.Year = m[i]
		case "month":
			f.Month = m[i]
		case "file":
			f.File = m[i]
		}
	}
	return f, true
}

// Episode builds a model.Episode for mediaURL saved under destFolder,
// with metadata filled in from the pattern's named groups.
func (p *Pattern) Episode(mediaURL, destFolder string) *model.Episode {
	ep := model.NewEpisode(mediaURL, destFolder)
	if f, ok := p.Parse(mediaURL); ok {
		ep.Show = f.Show
		ep.Year = f.Year
		ep.Month = f.Month
	}
	return ep
}
