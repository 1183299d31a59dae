package quran

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

type recordingObserver struct {
	events []FetchEvent
}

func (o *recordingObserver) OnFetch(e FetchEvent) {
	o.events = append(o.events, e)
}

const surah112 = `{"code":200,"status":"OK","data":{"number":112,"name":"سُورَةُ الإِخْلَاصِ",
	"englishName":"Al-Ikhlaas","englishNameTranslation":"Sincerity","numberOfAyahs":4,
	"revelationType":"Meccan"}}`

func TestHTTPClient_Chapter_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/112", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, surah112)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewHTTPClient(testConfig(srv.URL), obs)
	ch, err := client.Chapter(context.Background(), 112)

	require.NoError(t, err)
	assert.Equal(t, "Al-Ikhlaas", ch.Name)
	assert.Equal(t, "سُورَةُ الإِخْلَاصِ", ch.NativeName)
	assert.Equal(t, 4, ch.VerseCount)
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 1, obs.events[0].Attempts)
}

func TestHTTPClient_Chapter_RejectsOutOfRange(t *testing.T) {
	client := NewHTTPClient(testConfig("http://127.0.0.1:1"), nil)
	_, err := client.Chapter(context.Background(), 115)
	assert.ErrorIs(t, err, domain.ErrInvalidChapter)
}

func TestHTTPClient_Chapters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah", r.URL.Path)
		fmt.Fprint(w, `{"code":200,"status":"OK","data":[
			{"number":1,"name":"سُورَةُ ٱلْفَاتِحَةِ","englishName":"Al-Faatiha","numberOfAyahs":7},
			{"number":2,"name":"سُورَةُ البَقَرَةِ","englishName":"Al-Baqara","numberOfAyahs":286}]}`)
	}))
	defer srv.Close()

	chapters, err := NewHTTPClient(testConfig(srv.URL), nil).Chapters(context.Background())
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, 286, chapters[1].VerseCount)
}

func TestHTTPClient_Verse_CombinesTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ayah/112:1":
			fmt.Fprint(w, `{"code":200,"status":"OK","data":{"text":"قُلْ هُوَ ٱللَّهُ أَحَدٌ","numberInSurah":1}}`)
		case "/ayah/112:1/en.asad":
			fmt.Fprint(w, `{"code":200,"status":"OK","data":{"text":"SAY: He is the One God","numberInSurah":1}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	v, err := NewHTTPClient(testConfig(srv.URL), nil).Verse(context.Background(), 112, 1)
	require.NoError(t, err)
	assert.Equal(t, "قُلْ هُوَ ٱللَّهُ أَحَدٌ", v.Arabic)
	assert.Equal(t, "SAY: He is the One God", v.Translation)
	assert.Equal(t, 112, v.Chapter)
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, surah112)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	_, err := NewHTTPClient(cfg, nil).Chapter(context.Background(), 112)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.MaxRetries = 0

	obs := &recordingObserver{}
	_, err := NewHTTPClient(cfg, obs).Chapter(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "UNAVAILABLE", obs.events[0].ErrorCode)
}

func TestHTTPClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, surah112)
	}))
	defer srv.Close()

	ch, err := NewHTTPClient(testConfig(srv.URL), nil).Chapter(context.Background(), 112)
	require.NoError(t, err)
	assert.Equal(t, 4, ch.VerseCount)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_RetryExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2
	_, err := NewHTTPClient(cfg, nil).Chapter(context.Background(), 112)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_InvalidResponseNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"code":200,"status":"OK","data":`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(testConfig(srv.URL), nil).Chapter(context.Background(), 112)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, surah112)
	}))
	defer srv.Close()

	assert.True(t, NewHTTPClient(testConfig(srv.URL), nil).Available(context.Background()))
	assert.False(t, NewHTTPClient(testConfig("http://127.0.0.1:1"), nil).Available(context.Background()))
}

func TestLogObserver_Format(t *testing.T) {
	var buf strings.Builder
	NewLogObserver(&buf).OnFetch(FetchEvent{Path: "/surah/1", Attempts: 2, LatencyMs: 12, ErrorCode: "TIMEOUT"})
	assert.Contains(t, buf.String(), "quran_fetch path=/surah/1 attempts=2 latency_ms=12 status=err:TIMEOUT")
}
