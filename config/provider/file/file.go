package file

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/merge"
	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
	json5parser "github.com/0xalexb/hjarta-config/config/parser/json5"
	tomlparser "github.com/0xalexb/hjarta-config/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// DefaultDirectory is the directory, relative to the working directory,
// searched when no base path is configured.
const DefaultDirectory = "config"

// Parser defines an interface for decoding file contents into a raw value.
type Parser interface {
	Parse(data []byte) (any, error)
}

type registration struct {
	extension string
	parser    Parser
}

// Provider implements config.Provider for configuration files.
type Provider struct {
	basePath string
	parsers  []registration
	logger   *slog.Logger
}

// Option defines a function type for configuring a Provider.
type Option func(*Provider)

// WithBasePath sets the directory searched for configuration files.
func WithBasePath(path string) Option {
	return func(p *Provider) {
		p.basePath = path
	}
}

// WithParser registers parser for files with the given extension. An
// existing registration keeps its position; a new one is appended. A nil
// parser keeps the extension in the search but fails with
// ErrParserUnavailable when such a file exists.
func WithParser(extension string, parser Parser) Option {
	return func(p *Provider) {
		extension = strings.ToLower(strings.TrimPrefix(extension, "."))

		index := slices.IndexFunc(p.parsers, func(r registration) bool {
			return r.extension == extension
		})
		if index >= 0 {
			p.parsers[index].parser = parser

			return
		}

		p.parsers = append(p.parsers, registration{extension: extension, parser: parser})
	}
}

// WithLogger sets the logger used to report discovered files.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a file Provider with the json, yaml, yml, toml and
// json5 parsers registered in that order.
func NewProvider(opts ...Option) *Provider {
	yaml := yamlparser.NewParser()

	provider := &Provider{
		parsers: []registration{
			{extension: "json", parser: jsonparser.NewParser()},
			{extension: "yaml", parser: yaml},
			{extension: "yml", parser: yaml},
			{extension: "toml", parser: tomlparser.NewParser()},
			{extension: "json5", parser: json5parser.NewParser()},
		},
	}

	for _, apply := range opts {
		apply(provider)
	}

	if provider.logger == nil {
		provider.logger = slog.Default()
	}

	return provider
}

// Extensions returns the registered extensions in search order.
func (p *Provider) Extensions() []string {
	extensions := make([]string, len(p.parsers))
	for i, r := range p.parsers {
		extensions[i] = r.extension
	}

	return extensions
}

// Read loads and merges every configuration file found for rc.Env.
func (p *Provider) Read(ctx context.Context, rc config.ReadContext) (map[string]any, error) {
	basePath, err := p.resolveBasePath()
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)

	for _, baseName := range BaseNames(rc.Env) {
		for _, r := range p.parsers {
			err := ctx.Err()
			if err != nil {
				return nil, fmt.Errorf("reading config files: %w", err)
			}

			fpath := filepath.Join(basePath, baseName+"."+r.extension)

			data, found, err := fetch(fpath)
			if err != nil {
				return nil, err
			}

			if !found {
				continue
			}

			if len(bytes.TrimSpace(data)) == 0 {
				p.logger.Debug("empty config file skipped", slog.String("path", fpath))

				continue
			}

			object, err := p.load(fpath, r, data)
			if err != nil {
				return nil, err
			}

			p.logger.Debug("config file loaded", slog.String("path", fpath), slog.Int("keys", len(object)))

			merge.Merge(raw, object)
		}
	}

	return raw, nil
}

func (p *Provider) load(fpath string, r registration, data []byte) (map[string]any, error) {
	if r.parser == nil {
		return nil, &FormatError{
			Path: fpath,
			Err:  fmt.Errorf("%w: no parser registered for .%s files", ErrParserUnavailable, r.extension),
		}
	}

	value, err := r.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %q: %w", fpath, err)
	}

	object, ok := value.(map[string]any)
	if !ok || object == nil {
		return nil, &FormatError{Path: fpath, Err: ErrNotObject}
	}

	return object, nil
}

func (p *Provider) resolveBasePath() (string, error) {
	if p.basePath != "" {
		return p.basePath, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	return filepath.Join(wd, DefaultDirectory), nil
}

// BaseNames returns the candidate file base names for env in merge order.
// Environment specific names are omitted when env is empty, and repeated
// names are listed once.
func BaseNames(env string) []string {
	names := []string{"default"}

	if env != "" {
		names = append(names, env)
	}

	names = append(names, "local")

	if env != "" {
		names = append(names, "local-"+env)
	}

	var unique []string

	for _, name := range names {
		if !slices.Contains(unique, name) {
			unique = append(unique, name)
		}
	}

	return unique
}
