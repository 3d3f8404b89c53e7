// Command shorten creates a short link through the API and prints the
// resulting short URL.
//
// Usage:
//
//	SHORTENER_API_BASE=... SHORTENER_TOKEN=... shorten <driveUrl> [name]
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/eweracs/go-shortlink/internal/models"
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	apiBase := os.Getenv("SHORTENER_API_BASE")
	token := os.Getenv("SHORTENER_TOKEN")
	if apiBase == "" || token == "" {
		fmt.Fprintln(os.Stderr, "Missing SHORTENER_API_BASE or SHORTENER_TOKEN.")
		os.Exit(1)
	}

	driveURL := flag.Arg(0)
	if driveURL == "" {
		fmt.Fprintln(os.Stderr, "Usage: shorten <driveUrl> [name]")
		os.Exit(1)
	}
	name := flag.Arg(1)

	body, err := json.Marshal(models.ShortenRequest{
		DriveURL: driveURL,
		Name:     name,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	url := strings.TrimSuffix(apiBase, "/") + "/shorten"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Fprintf(os.Stderr, "Request failed (%d): %s\n", resp.StatusCode, respBody)
		os.Exit(1)
	}

	var result models.ShortenResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.ShortURL)
}
