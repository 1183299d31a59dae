package quran

// Config holds the content client settings.
type Config struct {
	Endpoint           string
	TranslationEdition string
	TimeoutMs          int
	MaxRetries         int
}

// DefaultConfig targets the public alquran.cloud v1 API.
func DefaultConfig() Config {
	return Config{
		Endpoint:           "https://api.alquran.cloud/v1",
		TranslationEdition: "en.asad",
		TimeoutMs:          10000,
		MaxRetries:         1,
	}
}
