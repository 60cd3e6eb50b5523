package config

import (
	"os"
)

const (
	ingestionURLEnv = "INGESTION_URL"
	gentextURLEnv   = "GENTEXT_URL"
	embeddingURLEnv = "EMBEDDING_URL"
	dispatchURLEnv  = "DISPATCH_URL"
)

// ServicesConfig holds base URLs for the companion HTTP services.
type ServicesConfig struct {
	IngestionURL string
	GentextURL   string
	EmbeddingURL string
	DispatchURL  string
}

func LoadServicesConfig() *ServicesConfig {
	return &ServicesConfig{
		IngestionURL: os.Getenv(ingestionURLEnv),
		GentextURL:   os.Getenv(gentextURLEnv),
		EmbeddingURL: os.Getenv(embeddingURLEnv),
		DispatchURL:  os.Getenv(dispatchURLEnv),
	}
}

func (c *ServicesConfig) Validate() error {
	if c == nil || c.IngestionURL == "" {
		return ErrIngestionURLMissing
	}
	if c.DispatchURL == "" {
		return ErrDispatchURLMissing
	}
	return nil
}
