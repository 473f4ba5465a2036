package main

import (
	"errors"
	"flag"
	"image/color"
	"testing"

	"github.com/phanxgames/dvdsaver/bounce"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.term || o.hud || o.debug || o.sound || o.stats {
		t.Errorf("boolean flags default on: %+v", o)
	}
	if o.width != 800 || o.height != 600 {
		t.Errorf("size = %dx%d, want 800x600", o.width, o.height)
	}
	if o.bg != "black" || o.title != "DVD" {
		t.Errorf("bg/title = %q/%q", o.bg, o.title)
	}
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-term", "-seed", "7", "-tps", "20", "-bg", "navy", "-stats"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !o.term || o.seed != 7 || o.tps != 20 || o.bg != "navy" || !o.stats {
		t.Errorf("parsed %+v", o)
	}
}

func TestParseFlagsRejectsBadSize(t *testing.T) {
	if _, err := parseFlags([]string{"-width", "0"}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

func TestBackground(t *testing.T) {
	tests := []struct {
		name    string
		want    color.RGBA
		wantErr bool
	}{
		{"black", color.RGBA{0, 0, 0, 255}, false},
		{"Navy", color.RGBA{0, 0, 128, 255}, false},
		{"no-such-color", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := background(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("background(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("background(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewSourceSeeded(t *testing.T) {
	a, b := newSource(3), newSource(3)
	for i := 0; i < 10; i++ {
		if a.Float32() != b.Float32() {
			t.Fatal("same seed produced different sequences")
		}
	}
	var _ bounce.Source = a
}
