package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/quran"
)

// FakeContent is an in-memory quran.Client. Verse text is synthesised from
// the chapter and verse numbers. Set Err to make every call fail.
type FakeContent struct {
	mu         sync.Mutex
	chapters   map[int]domain.Chapter
	Err        error
	VerseCalls int
}

var _ quran.Client = (*FakeContent)(nil)

// NewFakeContent knows Al-Faatiha, Al-Baqara, Al-Ikhlaas and An-Naas.
func NewFakeContent() *FakeContent {
	return &FakeContent{chapters: map[int]domain.Chapter{
		1:   {Number: 1, Name: "Al-Faatiha", NativeName: "سُورَةُ ٱلْفَاتِحَةِ", VerseCount: 7, RevelationType: "Meccan"},
		2:   {Number: 2, Name: "Al-Baqara", NativeName: "سورة البقرة", VerseCount: 286, RevelationType: "Medinan"},
		112: {Number: 112, Name: "Al-Ikhlaas", NativeName: "سورة الإخلاص", VerseCount: 4, RevelationType: "Meccan"},
		114: {Number: 114, Name: "An-Naas", NativeName: "سورة الناس", VerseCount: 6, RevelationType: "Meccan"},
	}}
}

// AddChapter registers or replaces a chapter.
func (f *FakeContent) AddChapter(ch domain.Chapter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chapters[ch.Number] = ch
}

func (f *FakeContent) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]domain.Chapter, 0, len(f.chapters))
	for n := 1; n <= domain.ChapterCount; n++ {
		if ch, ok := f.chapters[n]; ok {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (f *FakeContent) Chapter(ctx context.Context, number int) (*domain.Chapter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	ch, ok := f.chapters[number]
	if !ok {
		return nil, fmt.Errorf("%w: unknown surah %d", quran.ErrInvalidResponse, number)
	}
	return &ch, nil
}

func (f *FakeContent) Verse(ctx context.Context, chapter, verse int) (*domain.VerseText, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.VerseCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	return &domain.VerseText{
		Chapter:     chapter,
		Verse:       verse,
		Arabic:      fmt.Sprintf("arabic-%d:%d", chapter, verse),
		Translation: fmt.Sprintf("translation-%d:%d", chapter, verse),
	}, nil
}

func (f *FakeContent) Available(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Err == nil
}
