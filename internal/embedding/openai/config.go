package openai

// Config holds configuration for the OpenAI embedding generator. A zero
// Dimension falls back to the configured model's native vector width.
type Config struct {
	APIKey    string `env:"OPENAI_API_KEY"`
	Model     string `env:"OPENAI_EMBEDDING_MODEL"     envDefault:"text-embedding-3-small"`
	Dimension int    `env:"OPENAI_EMBEDDING_DIMENSION" envDefault:"0"`
}
