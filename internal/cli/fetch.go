package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/princespaghetti/branding/internal/brandfile"
	"github.com/princespaghetti/branding/internal/fetcher"
)

var (
	fetchTimeout     time.Duration
	fetchConcurrency int
	fetchOutput      string
	fetchCompact     bool
)

// fetchCmd represents the fetch command.
var fetchCmd = &cobra.Command{
	Use:   "fetch <url> [url...]",
	Short: "Fetch branding data and print it as JSON",
	Long: `Fetch branding data from one or more URLs.

With a single URL the decoded JSON payload is printed, or written to a file
with --output. With several URLs each result is printed as an object holding
either "data" or "error", in the order the URLs were given.

Examples:
  branding fetch https://example.com/branding.json
  branding fetch --output branding.json https://example.com/branding.json
  branding fetch --compact https://a.example.com/b.json https://b.example.com/b.json`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "HTTP client timeout (0 disables)")
	fetchCmd.Flags().IntVar(&fetchConcurrency, "concurrency", 4, "Maximum parallel requests when fetching several URLs")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Write the payload to this file instead of stdout (single URL only)")
	fetchCmd.Flags().BoolVar(&fetchCompact, "compact", false, "Print JSON on a single line")
}

// fetchOptions holds the settings of one fetch invocation.
type fetchOptions struct {
	Output      string
	Compact     bool
	Concurrency int
}

// fetchRunner executes the fetch command against injected dependencies.
type fetchRunner struct {
	fetcher *fetcher.Fetcher
	writer  *brandfile.Writer
	logger  *logrus.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// fetchEntry is the per-URL output when several URLs are fetched.
// Exactly one of data and error is written; a null payload still yields
// "data":null.
type fetchEntry struct {
	URL   string `json:"url"`
	Data  any    `json:"data"`
	Error string `json:"error"`
}

// MarshalJSON implements json.Marshaler.
func (e fetchEntry) MarshalJSON() ([]byte, error) {
	if e.Error != "" {
		return marshalUnescaped(struct {
			URL   string `json:"url"`
			Error string `json:"error"`
		}{e.URL, e.Error})
	}
	return marshalUnescaped(struct {
		URL  string `json:"url"`
		Data any    `json:"data"`
	}{e.URL, e.Data})
}

// marshalUnescaped is json.Marshal without HTML escaping, matching writeJSON.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	runner := &fetchRunner{
		fetcher: fetcher.NewFetcher(&http.Client{Timeout: fetchTimeout}),
		writer:  brandfile.NewWriter(nil),
		logger:  logger,
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
	}

	opts := fetchOptions{
		Output:      fetchOutput,
		Compact:     fetchCompact,
		Concurrency: fetchConcurrency,
	}

	return runner.run(cmd.Context(), args, opts)
}

func (r *fetchRunner) run(ctx context.Context, urls []string, opts fetchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Output != "" && len(urls) != 1 {
		return &usageError{err: fmt.Errorf("--output requires exactly one URL, got %d", len(urls))}
	}

	if len(urls) == 1 {
		return r.fetchOne(ctx, urls[0], opts)
	}
	return r.fetchMany(ctx, urls, opts)
}

func (r *fetchRunner) fetchOne(ctx context.Context, url string, opts fetchOptions) error {
	r.logger.WithField("url", url).Debug("fetching branding data")

	payload, err := r.fetcher.FetchBranding(ctx, url)
	if err != nil {
		r.logCause(url, err)
		return err
	}

	if opts.Output != "" {
		if err := r.writer.Write(ctx, opts.Output, payload); err != nil {
			return err
		}
		r.logger.WithFields(logrus.Fields{"url": url, "path": opts.Output}).Debug("wrote branding data")
		success(r.stderr, "Branding data written to %s", opts.Output)
		return nil
	}

	return writeJSON(r.stdout, payload, opts.Compact)
}

func (r *fetchRunner) fetchMany(ctx context.Context, urls []string, opts fetchOptions) error {
	r.logger.WithFields(logrus.Fields{
		"urls":        len(urls),
		"concurrency": opts.Concurrency,
	}).Debug("fetching branding data")

	results := r.fetcher.FetchAll(ctx, urls, opts.Concurrency)

	var firstErr error
	failed := 0
	for _, res := range results {
		entry := fetchEntry{URL: res.URL, Data: res.Payload}
		if res.Err != nil {
			r.logCause(res.URL, res.Err)
			entry.Error = res.Err.Error()
			failed++
			if firstErr == nil {
				firstErr = res.Err
			}
		}
		if err := writeJSON(r.stdout, entry, opts.Compact); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fetches failed: %w", failed, len(urls), firstErr)
	}
	return nil
}

// logCause records the underlying reason of a fetch failure at debug level.
func (r *fetchRunner) logCause(url string, err error) {
	entry := r.logger.WithField("url", url)
	if cause := errors.Unwrap(err); cause != nil {
		entry = entry.WithError(cause)
	}
	entry.Debug("fetch failed")
}
