// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckTrust(t *testing.T) {
	discard := slog.New(slog.DiscardHandler)

	dir := t.TempDir()
	regularFile := filepath.Join(dir, "fake.so")
	if err := os.WriteFile(regularFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	subdir := filepath.Join(dir, "sub")
	if err := os.Mkdir(subdir, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	tests := []struct {
		name           string
		path           string
		allowUntrusted bool
		wantErr        bool
	}{
		{
			name:    "untrusted directory rejected by default",
			path:    regularFile,
			wantErr: true,
		},
		{
			name:           "untrusted directory accepted with override",
			path:           regularFile,
			allowUntrusted: true,
			wantErr:        false,
		},
		{
			name:    "directory is never a regular file",
			path:    subdir,
			wantErr: true,
		},
		{
			name:    "nonexistent path rejected",
			path:    filepath.Join(dir, "missing.so"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkTrust(tt.path, tt.allowUntrusted, discard)
			if tt.wantErr && err == nil {
				t.Fatalf("checkTrust(%q) error = nil, want error", tt.path)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("checkTrust(%q) error = %v", tt.path, err)
			}
		})
	}
}

func TestCheckTrustDirectoryOverrideNeverSkipsRegularFileCheck(t *testing.T) {
	discard := slog.New(slog.DiscardHandler)
	dir := t.TempDir()
	_, err := checkTrust(dir, true, discard)
	if err == nil {
		t.Fatal("checkTrust on a directory with allowUntrusted=true should still fail the regular-file check")
	}
}
