package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// Client provides chapter metadata and verse text.
type Client interface {
	Chapters(ctx context.Context) ([]domain.Chapter, error)
	Chapter(ctx context.Context, number int) (*domain.Chapter, error)
	Verse(ctx context.Context, chapter, verse int) (*domain.VerseText, error)
	// Available checks whether the content server is reachable.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client for an alquran.cloud compatible API.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// envelope is the wrapper every API response uses.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type surahPayload struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

func (s surahPayload) toDomain() domain.Chapter {
	return domain.Chapter{
		Number:             s.Number,
		Name:               s.EnglishName,
		NativeName:         s.Name,
		EnglishTranslation: s.EnglishNameTranslation,
		VerseCount:         s.NumberOfAyahs,
		RevelationType:     s.RevelationType,
	}
}

type ayahPayload struct {
	Text          string       `json:"text"`
	NumberInSurah int          `json:"numberInSurah"`
	Surah         surahPayload `json:"surah"`
}

func (c *httpClient) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	var payload []surahPayload
	if err := c.fetch(ctx, "/surah", &payload); err != nil {
		return nil, err
	}
	chapters := make([]domain.Chapter, 0, len(payload))
	for _, s := range payload {
		chapters = append(chapters, s.toDomain())
	}
	return chapters, nil
}

func (c *httpClient) Chapter(ctx context.Context, number int) (*domain.Chapter, error) {
	if number < 1 || number > domain.ChapterCount {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidChapter, number)
	}
	var payload surahPayload
	if err := c.fetch(ctx, fmt.Sprintf("/surah/%d", number), &payload); err != nil {
		return nil, err
	}
	if payload.NumberOfAyahs < 1 {
		return nil, fmt.Errorf("%w: surah %d has no verses", ErrInvalidResponse, number)
	}
	ch := payload.toDomain()
	return &ch, nil
}

// Verse fetches the Arabic text and the configured translation concurrently.
func (c *httpClient) Verse(ctx context.Context, chapter, verse int) (*domain.VerseText, error) {
	var arabic, translation ayahPayload
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.fetch(gctx, fmt.Sprintf("/ayah/%d:%d", chapter, verse), &arabic)
	})
	g.Go(func() error {
		return c.fetch(gctx, fmt.Sprintf("/ayah/%d:%d/%s", chapter, verse, c.cfg.TranslationEdition), &translation)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.VerseText{
		Chapter:     chapter,
		Verse:       verse,
		Arabic:      arabic.Text,
		Translation: translation.Text,
	}, nil
}

// fetch GETs path and decodes the envelope's data into out, retrying up to
// MaxRetries times. Decode failures are not retried.
func (c *httpClient) fetch(ctx context.Context, path string, out any) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 0
	for i := 0; i < 1+c.cfg.MaxRetries; i++ {
		attempts++
		lastErr = c.doRequest(ctx, path, out)
		if lastErr == nil || errors.Is(lastErr, ErrInvalidResponse) || ctx.Err() != nil {
			break
		}
	}

	err := classify(ctx, lastErr)
	event := FetchEvent{
		Path:      path,
		Attempts:  attempts,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	}
	c.observer.OnFetch(event)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	return nil
}

func classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidResponse):
		return err
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func (c *httpClient) doRequest(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("content server returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: decoding envelope: %v", ErrInvalidResponse, err)
	}
	if env.Code != http.StatusOK {
		return fmt.Errorf("%w: code %d status %q", ErrInvalidResponse, env.Code, env.Status)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decoding data: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/surah/1", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
