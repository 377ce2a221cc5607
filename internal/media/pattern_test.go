package media

import (
	"testing"
)

const upFirst = "http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_up_first.mp3"

func TestPattern_FindAll(t *testing.T) {
	other := "http://pd.npr.org/anon.npr-mp3/npr/money/2015/12/20151230_pmpod.mp3"

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single link in markup",
			text: `<a href="` + upFirst + `">Download</a>`,
			want: []string{upFirst},
		},
		{
			name: "same link twice is kept twice",
			text: `<a href="` + upFirst + `">one</a>` + "\n" + `<a href="` + upFirst + `">two</a>`,
			want: []string{upFirst, upFirst},
		},
		{
			name: "two links on one line stay separate",
			text: upFirst + " and " + other,
			want: []string{upFirst, other},
		},
		{
			name: "order follows the text",
			text: other + "\n" + upFirst,
			want: []string{other, upFirst},
		},
		{
			name: "no links",
			text: "<html><body>nothing to see</body></html>",
			want: nil,
		},
		{
			name: "https is not matched",
			text: "https://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_up_first.mp3",
			want: nil,
		},
		{
			name: "prefix is case sensitive",
			text: "http://PD.NPR.ORG/anon.npr-mp3/npr/money/2016/01/20160115_up_first.mp3",
			want: nil,
		},
		{
			name: "show slug is letters only",
			text: "http://pd.npr.org/anon.npr-mp3/npr/money2/2016/01/20160115_up_first.mp3",
			want: nil,
		},
		{
			name: "three digit year",
			text: "http://pd.npr.org/anon.npr-mp3/npr/money/201/01/20160115_up_first.mp3",
			want: nil,
		},
		{
			name: "file must start with eight digits",
			text: "http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/2016011_up_first.mp3",
			want: nil,
		},
		{
			name: "other extension",
			text: "http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_up_first.wav",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NPR2016.FindAll(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("FindAll() returned %d matches %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FindAll()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPattern_Match(t *testing.T) {
	if !NPR2016.Match(upFirst) {
		t.Errorf("Match(%q) = false, want true", upFirst)
	}
	if NPR2016.Match("see " + upFirst) {
		t.Error("Match() should reject text around the URL")
	}
	if !NPR2016.Match("http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_a.mp3.mp3") {
		t.Error("Match() should accept a file name containing .mp3 twice")
	}
}

func TestPattern_Parse(t *testing.T) {
	f, ok := NPR2016.Parse(upFirst)
	if !ok {
		t.Fatal("Parse() ok = false, want true")
	}

	want := Fields{Show: "money", Year: "2016", Month: "01", File: "20160115_up_first.mp3"}
	if f != want {
		t.Errorf("Parse() = %+v, want %+v", f, want)
	}

	if _, ok := NPR2016.Parse("http://example.com/file.mp3"); ok {
		t.Error("Parse() ok = true for a foreign URL")
	}
}

func TestPattern_Episode(t *testing.T) {
	ep := NPR2016.Episode(upFirst, "/tmp/podcasts")

	if ep.FileName != "20160115_up_first.mp3" {
		t.Errorf("FileName = %q, want %q", ep.FileName, "20160115_up_first.mp3")
	}
	if ep.Show != "money" || ep.Year != "2016" || ep.Month != "01" {
		t.Errorf("metadata = %q/%q/%q, want money/2016/01", ep.Show, ep.Year, ep.Month)
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pname   string
		expr    string
		wantErr bool
	}{
		{"valid", "custom", `http://example\.com/\d+\.mp3`, false},
		{"invalid regex", "broken", `http://(`, true},
		{"empty name", "", `.*`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pname, tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name() != tt.pname {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.pname)
			}
		})
	}
}

func TestCompile_WithoutNamedGroups(t *testing.T) {
	p := MustCompile("plain", `http://example\.com/[a-z]+\.mp3`)

	ep := p.Episode("http://example.com/show.mp3", ".")
	if ep.FileName != "show.mp3" {
		t.Errorf("FileName = %q, want %q", ep.FileName, "show.mp3")
	}
	if ep.Show != "" {
		t.Errorf("Show = %q, want empty", ep.Show)
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("npr-2016")
	if !ok {
		t.Fatal("Lookup(npr-2016) not found")
	}
	if p != NPR2016 {
		t.Error("Lookup(npr-2016) returned a different pattern")
	}

	if _, ok := Lookup("npr-1999"); ok {
		t.Error("Lookup(npr-1999) should not be found")
	}

	names := Names()
	if len(names) != 1 || names[0] != "npr-2016" {
		t.Errorf("Names() = %v, want [npr-2016]", names)
	}
}
