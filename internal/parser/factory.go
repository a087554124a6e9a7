package parser

import (
	"fmt"
	"sort"

	"docval/internal/config"
	"docval/internal/port"
)

// ProviderFactory creates a RecordExtractor from a provider config.
type ProviderFactory func(cfg *config.ParserProviderConfig) (port.RecordExtractor, error)

// registry of provider factories, populated by the binaries via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extraction provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewExtractor creates a RecordExtractor from a provider config using the registered factory.
func NewExtractor(cfg *config.ParserProviderConfig) (port.RecordExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// FromConfig builds the extractor chain described by cfg: the primary
// provider alone, or primary then secondary behind a FallbackExtractor.
// It returns nil, nil when no provider is configured.
func FromConfig(cfg *config.ParserConfig) (port.RecordExtractor, error) {
	primaryCfg := cfg.PrimaryConfig()
	if primaryCfg == nil {
		return nil, nil
	}
	primary, err := NewExtractor(primaryCfg)
	if err != nil {
		return nil, fmt.Errorf("creating primary extractor: %w", err)
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}
	secondary, err := NewExtractor(secondaryCfg)
	if err != nil {
		return nil, fmt.Errorf("creating secondary extractor: %w", err)
	}
	return NewFallbackExtractor(
		[]port.RecordExtractor{primary, secondary},
		[]string{primaryCfg.Provider, secondaryCfg.Provider},
	), nil
}
