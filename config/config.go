// Package config loads the settings file and watches it for live changes
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
)

// File is the settings document; nil fields keep the current value
type File struct {
	TickInterval    *time.Duration `yaml:"tick_interval"`
	FrameInterval   *time.Duration `yaml:"frame_interval"`
	IncomePeriod    *time.Duration `yaml:"income_period"`
	AdminMultiplier *float64       `yaml:"admin_multiplier"`
	GlitchDuration  *time.Duration `yaml:"glitch_duration"`
	Sound           *bool          `yaml:"sound"`
	AdminKeys       *bool          `yaml:"admin_keys"`
	Seed            *uint64        `yaml:"seed"`
}

// Load reads and validates a settings file; a missing file yields an empty File
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a settings document
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate reports every out-of-range value
func (f File) Validate() error {
	var errs []error
	positive := func(name string, d *time.Duration) {
		if d != nil && *d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, *d))
		}
	}
	positive("tick_interval", f.TickInterval)
	positive("frame_interval", f.FrameInterval)
	positive("income_period", f.IncomePeriod)
	if f.GlitchDuration != nil && *f.GlitchDuration < 0 {
		errs = append(errs, fmt.Errorf("glitch_duration must not be negative, got %s", *f.GlitchDuration))
	}
	if f.AdminMultiplier != nil && *f.AdminMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("admin_multiplier must be positive, got %g", *f.AdminMultiplier))
	}
	return errors.Join(errs...)
}

// Apply copies every set field onto s
func (f File) Apply(s *engine.Settings) {
	if f.TickInterval != nil {
		s.TickInterval = *f.TickInterval
	}
	if f.FrameInterval != nil {
		s.FrameInterval = *f.FrameInterval
	}
	if f.IncomePeriod != nil {
		s.IncomePeriod = *f.IncomePeriod
	}
	if f.AdminMultiplier != nil {
		s.AdminMultiplier = *f.AdminMultiplier
	}
	if f.GlitchDuration != nil {
		s.GlitchDuration = *f.GlitchDuration
	}
	if f.Sound != nil {
		s.SoundEnabled = *f.Sound
	}
	if f.AdminKeys != nil {
		s.AdminKeys = *f.AdminKeys
	}
}

// Payload returns the subset that may change while the game runs
func (f File) Payload() *event.SettingsPayload {
	return &event.SettingsPayload{
		AdminMultiplier: f.AdminMultiplier,
		GlitchDuration:  f.GlitchDuration,
		SoundEnabled:    f.Sound,
	}
}
