package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid configuration")

var logLevels = map[string]bool{
	"": true, "TRACE": true, "DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "OFF": true,
}

func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	var errs []error
	if !logLevels[strings.ToUpper(cfg.Logger.Level)] {
		errs = append(errs, fmt.Errorf("logger.level %q is not one of trace, debug, info, warn, error, off", cfg.Logger.Level))
	}
	if err := cfg.Limits().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("rules: %w", err))
	}
	if strings.TrimSpace(cfg.Organism.Name) == "" {
		errs = append(errs, errors.New("organism.name is required"))
	}
	if cfg.Scanner.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("scanner.chunk_size must be ≥ 0, got %d", cfg.Scanner.ChunkSize))
	}
	if cfg.Scanner.MaxDeflineBytes < 0 {
		errs = append(errs, fmt.Errorf("scanner.max_defline_bytes must be ≥ 0, got %d", cfg.Scanner.MaxDeflineBytes))
	}
	if cfg.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0, got %d", cfg.Server.MaxBodyBytes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
