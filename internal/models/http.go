// Package models defines the request and response bodies of the shortener
// API and the notification relay.
package models

// ShortenRequest is the body of POST /shorten. DriveID wins over DriveURL
// when both are present.
type ShortenRequest struct {
	// DriveURL is a pasted share link the server extracts the file id from.
	DriveURL string `json:"driveUrl,omitempty"`

	// DriveID is a raw file id, used verbatim.
	DriveID string `json:"driveId,omitempty"`

	// Name is an optional human-readable label for the download.
	Name string `json:"name,omitempty"`
}

// ShortenResponse carries the allocated id and both public URL forms.
type ShortenResponse struct {
	ShortID string `json:"shortId"`
	DriveID string `json:"driveId"`
	Name    string `json:"name,omitempty"`

	// ShortURL is the compact form, <base>/download?<shortId>.
	ShortURL string `json:"shortUrl"`

	// ShortURLLong spells the parameter out, <base>/download?short=<shortId>.
	ShortURLLong string `json:"shortUrlLong"`
}

// ResolveResponse is the body of a GET /resolve hit.
type ResolveResponse struct {
	DriveID string `json:"driveId"`
	Name    string `json:"name,omitempty"`
}

// NotifyRequest is the body of POST /notify on the relay.
type NotifyRequest struct {
	FileName       string `json:"fileName"`
	TurnstileToken string `json:"turnstileToken,omitempty"`
}

// OKResponse acknowledges /health and /notify.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse carries a short machine-readable reason string.
type ErrorResponse struct {
	Error string `json:"error"`
}
