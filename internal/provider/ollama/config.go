package ollama

// Config contains Ollama provider configuration.
type Config struct {
	BaseURL string   `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	Models  []string `env:"OLLAMA_MODELS"   envSeparator:"," envDefault:"llama3.2"`
	Timeout int      `env:"OLLAMA_TIMEOUT"  envDefault:"120"`
}
