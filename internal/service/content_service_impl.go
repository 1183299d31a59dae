package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/quran"
)

// maxConcurrentVerseFetches bounds in-flight verse requests per session.
const maxConcurrentVerseFetches = 4

type contentService struct {
	client quran.Client
}

func NewContentService(client quran.Client) ContentService {
	return &contentService{client: client}
}

func (s *contentService) Chapter(ctx context.Context, number int) (*domain.Chapter, error) {
	if number < 1 || number > domain.ChapterCount {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidChapter, number)
	}
	return s.client.Chapter(ctx, number)
}

func (s *contentService) SessionText(ctx context.Context, chapter, start, end int) (*domain.SessionText, error) {
	target := domain.VerseRange(start, end)
	if start == end {
		target = domain.SingleVerse(start)
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	meta, err := s.Chapter(ctx, chapter)
	if err != nil {
		return nil, fmt.Errorf("fetching chapter %d: %w", chapter, err)
	}
	if end > meta.VerseCount {
		return nil, fmt.Errorf("%w: %s has %d verses", domain.ErrInvalidRange, meta.Name, meta.VerseCount)
	}

	verses := make([]domain.VerseText, target.Size())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentVerseFetches)
	for i := range verses {
		g.Go(func() error {
			v, err := s.client.Verse(gctx, chapter, start+i)
			if err != nil {
				return fmt.Errorf("fetching verse %d:%d: %w", chapter, start+i, err)
			}
			verses[i] = *v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	text := &domain.SessionText{
		Chapter:     chapter,
		ChapterName: meta.Name,
		Target:      target,
		Verses:      verses,
	}
	arabic := make([]string, len(verses))
	translations := make([]string, len(verses))
	for i, v := range verses {
		arabic[i] = v.Arabic
		if target.IsRange() {
			translations[i] = fmt.Sprintf("(%d) %s", v.Verse, v.Translation)
		} else {
			translations[i] = v.Translation
		}
	}
	text.Arabic = strings.Join(arabic, " ")
	text.Translation = strings.Join(translations, " ")
	return text, nil
}

func (s *contentService) Available(ctx context.Context) bool {
	return s.client.Available(ctx)
}
