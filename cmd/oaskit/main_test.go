package main

import (
	"path/filepath"
	"testing"

	"github.com/erraggy/oaskit/internal/testutil"
)

func TestRun(t *testing.T) {
	valid := testutil.WriteTempFile(t, "openapi.yaml", "openapi: 3.1.0\ninfo: {title: T, version: v}\npaths: {}\n")
	invalid := testutil.WriteTempFile(t, "invalid.yaml", "openapi: 3.1.0\ninfo: {title: T}\npaths: {}\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, 1},
		{"help", []string{"help"}, 0},
		{"version", []string{"version"}, 0},
		{"unknown", []string{"frobnicate"}, 1},
		{"validate ok", []string{"validate", "-q", valid}, 0},
		{"validate invalid", []string{"validate", "-q", invalid}, 1},
		{"validate missing", []string{"validate", filepath.Join(t.TempDir(), "nope.yaml")}, 1},
		{"command help", []string{"prune", "-h"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
