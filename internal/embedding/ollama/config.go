package ollama

// Config holds configuration for the Ollama embedding generator.
type Config struct {
	BaseURL            string `env:"OLLAMA_BASE_URL"             envDefault:"http://localhost:11434"`
	EmbeddingModel     string `env:"OLLAMA_EMBEDDING_MODEL"      envDefault:"nomic-embed-text"`
	EmbeddingDimension int    `env:"OLLAMA_EMBEDDING_DIMENSION"  envDefault:"768"`
	Timeout            int    `env:"OLLAMA_TIMEOUT"              envDefault:"60"`
}
