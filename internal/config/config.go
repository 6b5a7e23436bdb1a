// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"

	"fastacheck-core/report"
	"fastacheck-core/rules"
	"fastacheck-core/scan"
)

type Config struct {
	Logger   Logger   `yaml:"logger"`
	Rules    Rules    `yaml:"rules"`
	Organism Organism `yaml:"organism"`
	Scanner  Scanner  `yaml:"scanner"`
	Server   Server   `yaml:"server"`
}

type Logger struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Rules struct {
	MinLength            int     `yaml:"min_length"`
	MaxLength            int     `yaml:"max_length"`
	MaxSeqIDLength       int     `yaml:"max_seqid_length"`
	MaxAmbiguousFraction float64 `yaml:"max_ambiguous_fraction"`
}

// Organism is the descriptive profile copied into every record row.
type Organism struct {
	Name        string `yaml:"name"`
	GeneticCode string `yaml:"genetic_code"`
	MolType     string `yaml:"moltype"`
	Topology    string `yaml:"topology"`
	Strand      string `yaml:"strand"`
}

type Scanner struct {
	ChunkSize       int `yaml:"chunk_size"`
	MaxDeflineBytes int `yaml:"max_defline_bytes"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"` // before and after gzip decoding
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	lim := rules.DefaultLimits()
	org := report.DefaultOrganism()
	return &Config{
		Rules: Rules{
			MinLength:            lim.MinLength,
			MaxLength:            lim.MaxLength,
			MaxSeqIDLength:       lim.MaxIDLength,
			MaxAmbiguousFraction: lim.MaxAmbiguousFraction,
		},
		Organism: Organism{
			Name:        org.Name,
			GeneticCode: org.GeneticCode,
			MolType:     org.MolType,
			Topology:    org.Topology,
			Strand:      org.Strand,
		},
		Scanner: Scanner{
			MaxDeflineBytes: scan.DefaultMaxDeflineBytes,
		},
		Server: Server{
			Addr:            "localhost:8080",
			MaxBodyBytes:    256 << 20,
			ReadTimeout:     60 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the file at configPath into data. Unknown keys are errors.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.SetStrict(true)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// Load returns Default() overlaid with the file at path, validated.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Limits converts the rules section.
func (c *Config) Limits() rules.Limits {
	return rules.Limits{
		MinLength:            c.Rules.MinLength,
		MaxLength:            c.Rules.MaxLength,
		MaxIDLength:          c.Rules.MaxSeqIDLength,
		MaxAmbiguousFraction: c.Rules.MaxAmbiguousFraction,
	}
}

// ScanOptions builds the scanner options for one run.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{
		Limits: c.Limits(),
		Organism: report.Organism{
			Name:        c.Organism.Name,
			GeneticCode: c.Organism.GeneticCode,
			MolType:     c.Organism.MolType,
			Topology:    c.Organism.Topology,
			Strand:      c.Organism.Strand,
		},
		ChunkSize:       c.Scanner.ChunkSize,
		MaxDeflineBytes: c.Scanner.MaxDeflineBytes,
	}
}
