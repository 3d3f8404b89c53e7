package service

import (
	"net/url"
	"regexp"
)

var drivePathID = regexp.MustCompile(`/d/([^/]+)`)

// ParseDriveID extracts a Drive file id from a pasted share link. The two
// supported shapes are "...?id=<fileID>" and ".../d/<fileID>/...". Anything
// else, including strings that are not URLs, reports no match.
func ParseDriveID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	if id := u.Query().Get("id"); id != "" {
		return id, true
	}

	if m := drivePathID.FindStringSubmatch(u.Path); m != nil {
		return m[1], true
	}

	return "", false
}
