package impl

import (
	"io"
	"log/slog"

	"vitrine/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Upload = &config.UploadConfig{MaxSizeBytes: 5 << 20}

	return cfg
}
