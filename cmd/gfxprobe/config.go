package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/nativegfx/interop"
)

// config is the probe configuration, read from a TOML file.
type config struct {
	Profile       string
	Libraries     []string
	Loaders       []string
	SearchPaths   []string
	RequiredProcs []string
	OptionalProcs []string
	Surface       surfaceConfig
}

type surfaceConfig struct {
	Width       int
	Height      int
	Scaling     float64
	SampleCount int
	StencilBits int
}

func defaultConfig() config {
	return config{
		Profile: interop.GlProfileFull.String(),
		Surface: surfaceConfig{Width: 256, Height: 256, Scaling: 1, SampleCount: 1, StencilBits: 8},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, fmt.Errorf("gfxprobe: read config %s: %w", path, err)
	}
	return conf, conf.validate()
}

// profile returns the configured profile, or an invalid one for an
// unknown name.
func (c config) profile() interop.GlProfile {
	switch c.Profile {
	case interop.GlProfileFull.String():
		return interop.GlProfileFull
	case interop.GlProfileEmbedded.String():
		return interop.GlProfileEmbedded
	}
	return ^interop.GlProfile(0)
}

func (c config) validate() error {
	if !c.profile().Valid() {
		return fmt.Errorf("gfxprobe: unknown profile %q", c.Profile)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("gfxprobe: invalid surface size %dx%d", c.Surface.Width, c.Surface.Height)
	}
	return nil
}

func (s surfaceConfig) info() interop.SurfaceInfo {
	return interop.SurfaceInfo{
		Width:       s.Width,
		Height:      s.Height,
		Scaling:     s.Scaling,
		SampleCount: s.SampleCount,
		StencilBits: s.StencilBits,
	}
}

func writeConfig(path string, conf config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("gfxprobe: encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
