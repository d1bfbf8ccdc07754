package client

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar"

// Gravatar builds deterministic avatar URLs from email addresses.
type Gravatar struct {
	Size    string
	Rating  string
	Default string
}

func NewGravatar() *Gravatar {
	return &Gravatar{
		Size:    "200",
		Rating:  "pg",
		Default: "mm",
	}
}

// URL returns the avatar URL for an email. The hash is md5 of the
// trimmed, lowercased address per the Gravatar convention.
func (g *Gravatar) URL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	q := url.Values{}
	q.Set("s", g.Size)
	q.Set("r", g.Rating)
	q.Set("d", g.Default)

	return fmt.Sprintf("%s/%s?%s", gravatarBaseURL, hex.EncodeToString(sum[:]), q.Encode())
}
