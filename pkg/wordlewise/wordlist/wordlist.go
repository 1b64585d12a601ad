// Package wordlist loads guess and answer pools from disk or over HTTP,
// with an optional read-through cache for downloaded lists.
package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cognicore/wordlewise/pkg/wordlewise/store"
)

// Loader reads word lists and filters them down to usable pool words.
type Loader struct {
	// Client is used for http(s) sources; http.DefaultClient if nil.
	Client *http.Client

	// Cache, if set, is consulted before downloading and updated after a
	// successful fetch. File sources are never cached.
	Cache store.Store

	// Length keeps only words of exactly this many bytes.
	Length int

	// OnlyAlpha drops words containing anything but ASCII letters.
	OnlyAlpha bool
}

// Load reads the list at source — a local file path or an http(s) URL —
// and returns the filtered, deduplicated pool in first-seen order.
func (l *Loader) Load(ctx context.Context, source string) ([]string, error) {
	lines, err := l.readLines(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return l.Filter(lines), nil
}

func (l *Loader) readLines(ctx context.Context, source string) ([]string, error) {
	if !isURL(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		return strings.Split(string(data), "\n"), nil
	}

	if l.Cache != nil {
		cached, ok, err := l.Cache.GetList(ctx, source)
		if err != nil {
			return nil, err
		}
		if ok {
			return cached.Words, nil
		}
	}

	lines, err := l.fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	if l.Cache != nil {
		put := store.List{Source: source, Words: lines, FetchedAt: time.Now()}
		if err := l.Cache.PutList(ctx, put); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]string, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(body), "\n"), nil
}

// Filter trims, deduplicates and applies the length and alphabetic
// filters, preserving first-seen order.
func (l *Loader) Filter(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	var words []string
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if len(word) != l.Length {
			continue
		}
		if l.OnlyAlpha && !isAlpha(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isAlpha(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
