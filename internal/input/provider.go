// Package input resolves puzzle identifiers to input text.
// Inputs are cached on disk as <data_dir>/<year>/<day>.txt and downloaded with
// the user's session cookie on a cache miss. Cache entries never expire.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"aocrunner/internal/aoc"
	"aocrunner/internal/logging"
)

// maxInputBytes caps a downloaded input. Real inputs are a few tens of KB.
const maxInputBytes = 4 << 20

// ErrInputTooLarge is returned when a download exceeds maxInputBytes.
// Such a body is never cached.
var ErrInputTooLarge = fmt.Errorf("input exceeds %d bytes", maxInputBytes)

// Config configures a Provider.
type Config struct {
	DataDir   string
	BaseURL   string
	Session   string
	UserAgent string
	Timeout   time.Duration
}

// Provider serves inputs from the on-disk cache, downloading missing ones.
type Provider struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewProvider creates a provider. The HTTP client is built lazily on the
// first download so cached runs never touch the network stack.
func NewProvider(cfg Config, logger *zap.Logger) *Provider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Provider{
		cfg:    cfg,
		logger: logging.For(logger, logging.CategoryFetch),
	}
}

// CachePath returns where the input for id is stored.
func (p *Provider) CachePath(id aoc.YearDay) string {
	return filepath.Join(p.cfg.DataDir, strconv.Itoa(id.Year), strconv.Itoa(id.Day)+".txt")
}

// Input returns the input for id.
func (p *Provider) Input(ctx context.Context, id aoc.YearDay) (string, error) {
	path := p.CachePath(id)

	data, err := os.ReadFile(path)
	if err == nil {
		p.logger.Debug("Input cache hit", zap.String("path", path))
		return string(data), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", &aoc.IOError{Op: "read", Path: path, Err: err}
	}

	if p.cfg.Session == "" {
		return "", aoc.ErrMissingCredential
	}

	p.logger.Debug("Input file is missing, downloading", zap.String("path", path))
	data, err = p.download(ctx, id)
	if err != nil {
		return "", err
	}

	if err := writeAtomic(path, data); err != nil {
		return "", err
	}
	p.logger.Info("Input cached", zap.String("path", path), zap.Int("bytes", len(data)))

	return string(data), nil
}

// Close releases idle connections held by the download client.
func (p *Provider) Close() {
	if p.client != nil {
		p.client.CloseIdleConnections()
	}
}

func (p *Provider) inputURL(id aoc.YearDay) string {
	return fmt.Sprintf("%s/%d/day/%d/input", p.cfg.BaseURL, id.Year, id.Day)
}

func (p *Provider) httpClient(base *url.URL) (*http.Client, error) {
	if p.client != nil {
		return p.client, nil
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: p.cfg.Session}})
	p.client = &http.Client{Jar: jar, Timeout: p.cfg.Timeout}
	return p.client, nil
}

func (p *Provider) download(ctx context.Context, id aoc.YearDay) ([]byte, error) {
	target := p.inputURL(id)

	base, err := url.Parse(p.cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		if err == nil {
			err = fmt.Errorf("base url %q is not absolute", p.cfg.BaseURL)
		}
		return nil, &aoc.FetchError{URL: target, Err: err}
	}

	client, err := p.httpClient(base)
	if err != nil {
		return nil, &aoc.FetchError{URL: target, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &aoc.FetchError{URL: target, Err: err}
	}
	if p.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", p.cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &aoc.FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &aoc.FetchError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputBytes+1))
	if err != nil {
		return nil, &aoc.FetchError{URL: target, Err: err}
	}
	if len(body) > maxInputBytes {
		return nil, &aoc.FetchError{URL: target, Err: ErrInputTooLarge}
	}
	return body, nil
}

// writeAtomic writes data next to path and renames it into place, so an
// interrupted write never leaves a truncated cache entry behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &aoc.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return &aoc.IOError{Op: "create", Path: dir, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &aoc.IOError{Op: "write", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &aoc.IOError{Op: "close", Path: tmpName, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &aoc.IOError{Op: "chmod", Path: tmpName, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &aoc.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
