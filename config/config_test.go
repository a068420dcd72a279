// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.DecimalPlaces() != 10 {
		t.Errorf("default DecimalPlaces = %d, want 10", s.DecimalPlaces())
	}
	if !s.Degrees() {
		t.Errorf("default Degrees = false, want true")
	}
	if s.Scientific() {
		t.Errorf("default Scientific = true, want false")
	}
	if s.LogTableEntries() != (10+logTableHeadroom)*10/3 {
		t.Errorf("LogTableEntries = %d, want %d", s.LogTableEntries(), (10+logTableHeadroom)*10/3)
	}
}

func TestNilSettingsAreSafe(t *testing.T) {
	var s *Settings
	if s.DecimalPlaces() != 10 {
		t.Errorf("nil DecimalPlaces = %d, want 10", s.DecimalPlaces())
	}
	if !s.Degrees() {
		t.Errorf("nil Degrees = false, want true")
	}
	if s.Scientific() {
		t.Errorf("nil Scientific = true, want false")
	}
}

func TestSetDecPlacesRejectsOutOfRange(t *testing.T) {
	s := Default()
	if err := s.SetDecPlaces(5); err == nil {
		t.Errorf("SetDecPlaces(5) should have failed (below minimum)")
	}
	if err := s.SetDecPlaces(33); err == nil {
		t.Errorf("SetDecPlaces(33) should have failed (above maximum)")
	}
	if err := s.SetDecPlaces(20); err != nil {
		t.Fatalf("SetDecPlaces(20): %v", err)
	}
	if s.LogTableEntries() != (20+logTableHeadroom)*10/3 {
		t.Errorf("LogTableEntries after resize = %d, want %d", s.LogTableEntries(), (20+logTableHeadroom)*10/3)
	}
}

func TestStepDecPlacesSaturates(t *testing.T) {
	s := Default()
	s.DecPlaces = minDecPlaces
	s.StepDecPlaces(-1)
	if s.DecimalPlaces() != minDecPlaces {
		t.Errorf("StepDecPlaces below minimum = %d, want %d", s.DecimalPlaces(), minDecPlaces)
	}

	s.DecPlaces = maxDecPlaces
	s.StepDecPlaces(1)
	if s.DecimalPlaces() != maxDecPlaces {
		t.Errorf("StepDecPlaces above maximum = %d, want %d", s.DecimalPlaces(), maxDecPlaces)
	}

	s.DecPlaces = 10
	s.StepDecPlaces(1)
	if s.DecimalPlaces() != 11 {
		t.Errorf("StepDecPlaces(+1) = %d, want 11", s.DecimalPlaces())
	}
	if s.LogTableEntries() != (11+logTableHeadroom)*10/3 {
		t.Errorf("LogTableEntries after step = %d, want %d", s.LogTableEntries(), (11+logTableHeadroom)*10/3)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rpncalc.toml")

	s := Default()
	if err := s.SetDecPlaces(16); err != nil {
		t.Fatalf("SetDecPlaces: %v", err)
	}
	s.SetDegrees(false)
	s.SetScientific(true)

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.DecimalPlaces() != 16 {
		t.Errorf("loaded DecimalPlaces = %d, want 16", loaded.DecimalPlaces())
	}
	if loaded.Degrees() {
		t.Errorf("loaded Degrees = true, want false")
	}
	if !loaded.Scientific() {
		t.Errorf("loaded Scientific = false, want true")
	}
	if loaded.LogTableEntries() != (16+logTableHeadroom)*10/3 {
		t.Errorf("loaded LogTableEntries = %d, want %d", loaded.LogTableEntries(), (16+logTableHeadroom)*10/3)
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if s.DecimalPlaces() != 10 {
		t.Errorf("DecimalPlaces = %d, want 10", s.DecimalPlaces())
	}
}
