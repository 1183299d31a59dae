package domain

// Chapter is the content provider's metadata for one surah.
type Chapter struct {
	Number             int
	Name               string
	NativeName         string
	EnglishTranslation string
	VerseCount         int
	RevelationType     string
}

// VerseText is the Arabic text and translation of one verse.
type VerseText struct {
	Chapter     int
	Verse       int
	Arabic      string
	Translation string
}

// SessionText is the combined text shown for a drill over a target.
type SessionText struct {
	Chapter     int
	ChapterName string
	Target      ReviewTarget
	Arabic      string
	Translation string
	Verses      []VerseText
}
