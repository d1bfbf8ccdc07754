package client

import (
	"net/url"
	"strings"
	"testing"
)

func TestGravatarURL(t *testing.T) {
	g := NewGravatar()

	got := g.URL("user@example.com")

	// md5("user@example.com")
	const wantHash = "b58996c504c5638798eb6b511e6f49af"
	if !strings.Contains(got, "/avatar/"+wantHash+"?") {
		t.Fatalf("URL() = %q, want hash %q in path", got, wantHash)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("URL() returned an unparsable URL: %v", err)
	}
	q := u.Query()
	if q.Get("s") != "200" || q.Get("r") != "pg" || q.Get("d") != "mm" {
		t.Fatalf("query = %q, want s=200, r=pg, d=mm", u.RawQuery)
	}
}

func TestGravatarURLNormalizesEmail(t *testing.T) {
	g := NewGravatar()

	base := g.URL("user@example.com")

	variants := []string{
		"USER@EXAMPLE.COM",
		"  user@example.com  ",
		"\tUser@Example.com\n",
	}
	for _, email := range variants {
		if got := g.URL(email); got != base {
			t.Fatalf("URL(%q) = %q, want %q", email, got, base)
		}
	}
}
