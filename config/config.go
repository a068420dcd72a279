// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the calculator's persistent settings record:
// working precision, angle mode, display notation, and the CORDIC
// table sizes those derive. Every getter is nil-receiver safe, the
// same convention ivy's own config.Config uses so a *Settings obtained
// before any Load/New call still answers sensible defaults instead of
// panicking.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

const (
	minDecPlaces = 6
	maxDecPlaces = 32

	// logTableHeadroom and trigTableHeadroom are guard digits added
	// to DecPlaces when sizing the CORDIC tables: each iteration
	// gains about log10(2) of a decimal digit, so a table gets ten
	// iterations for every three guarded digits, which drives the
	// shift-and-add residual below the rounded result.
	logTableHeadroom  = 8
	trigTableHeadroom = 6
)

// Settings is the calculator's one persistent settings record,
// equivalent to the firmware's global Settings struct (§3.6 of the
// governing numeric model): decimal working precision, angle mode,
// and display notation, plus the table sizes those two precision
// knobs derive.
type Settings struct {
	DecPlaces int  `toml:"dec_places"`
	DegMode   bool `toml:"degrees"`
	SciNot    bool `toml:"scientific_notation"`

	LogTableSize  int `toml:"-"`
	TrigTableSize int `toml:"-"`
}

// Default returns the out-of-the-box settings: 10 working decimal
// places, degrees, fixed notation.
func Default() *Settings {
	s := &Settings{DecPlaces: 10, DegMode: true, SciNot: false}
	s.resize()
	return s
}

func (s *Settings) resize() {
	s.LogTableSize = (s.DecPlaces + logTableHeadroom) * 10 / 3
	s.TrigTableSize = (s.DecPlaces + trigTableHeadroom) * 10 / 3
}

// DecimalPlaces reports the working precision, nil-safe like every
// other getter here so a caller holding a zero-value *Settings still
// gets a usable number instead of a divide-by-implicit-zero.
func (s *Settings) DecimalPlaces() int {
	if s == nil {
		return 10
	}
	return s.DecPlaces
}

// Degrees reports whether trig operators work in degrees (true) or
// radians (false).
func (s *Settings) Degrees() bool {
	if s == nil {
		return true
	}
	return s.DegMode
}

// Scientific reports whether the formatter renders in scientific
// notation rather than fixed notation.
func (s *Settings) Scientific() bool {
	if s == nil {
		return false
	}
	return s.SciNot
}

// LogTableEntries and TrigTableEntries report how many CORDIC table
// rows ln/exp/pow and the trig family should be evaluated over for
// the current working precision.
func (s *Settings) LogTableEntries() int {
	if s == nil {
		return Default().LogTableSize
	}
	return s.LogTableSize
}

func (s *Settings) TrigTableEntries() int {
	if s == nil {
		return Default().TrigTableSize
	}
	return s.TrigTableSize
}

// SetDecPlaces changes the working precision, returning an error and
// leaving the settings unchanged for a value outside [6, 32], and
// recomputes the derived table sizes the same way the firmware's
// SetDecPlaces rewrote its table sizes every time the operator
// changed the precision from the keyboard — mirroring ivy's config.Config
// pattern of a Set method that updates one field and a cached
// derived one together (SetOrigin recomputing bigOrigin).
func (s *Settings) SetDecPlaces(n int) error {
	if n < minDecPlaces || n > maxDecPlaces {
		return fmt.Errorf("config: dec places must be between %d and %d, got %d", minDecPlaces, maxDecPlaces, n)
	}
	s.DecPlaces = n
	s.resize()
	return nil
}

// StepDecPlaces nudges the working precision by delta (typically +1 or
// -1), clamping at [6, 32] instead of erroring, the same saturating
// increment/decrement the firmware's 'u' settings screen used when the
// user held the key past either end of the range.
func (s *Settings) StepDecPlaces(delta int) {
	n := s.DecPlaces + delta
	if n < minDecPlaces {
		n = minDecPlaces
	}
	if n > maxDecPlaces {
		n = maxDecPlaces
	}
	s.DecPlaces = n
	s.resize()
}

// SetDegrees switches the angle mode used by the trig operators.
func (s *Settings) SetDegrees(deg bool) { s.DegMode = deg }

// SetScientific switches the formatter's display notation.
func (s *Settings) SetScientific(sci bool) { s.SciNot = sci }

// Path returns the platform-specific settings file location,
// following the same XDG-style layout lookbusy1344's arm emulator
// config package uses for its own config.toml.
func Path() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "rpncalc")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "rpncalc.toml"
		}
		dir = filepath.Join(home, ".config", "rpncalc")
	default:
		return "rpncalc.toml"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "rpncalc.toml"
	}
	return filepath.Join(dir, "rpncalc.toml")
}

// Load reads settings from the default path, returning Default() if
// no settings file exists yet.
func Load() (*Settings, error) {
	return LoadFrom(Path())
}

// LoadFrom reads settings from an explicit path.
func LoadFrom(path string) (*Settings, error) {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	s.resize()
	return s, nil
}

// Save writes settings to the default path.
func (s *Settings) Save() error {
	return s.SaveTo(Path())
}

// SaveTo writes settings to an explicit path.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
