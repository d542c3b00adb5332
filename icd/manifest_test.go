// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
		check   func(t *testing.T, c Candidate)
	}{
		{
			name: "minimal nested shape",
			json: `{"ICD": {"library_path": "libvulkan_test.so", "api_version": "1.3.0"}}`,
			check: func(t *testing.T, c Candidate) {
				if c.LibraryPath != "libvulkan_test.so" {
					t.Errorf("LibraryPath = %q, want libvulkan_test.so", c.LibraryPath)
				}
				if c.APIVersion == 0 {
					t.Error("APIVersion should be non-zero for 1.3.0")
				}
			},
		},
		{
			name: "file_format_version present but never validated",
			json: `{"file_format_version": "99.99", "ICD": {"library_path": "./driver.so", "api_version": "1.2.0"}}`,
			check: func(t *testing.T, c Candidate) {
				if c.FileFormatVersion != "99.99" {
					t.Errorf("FileFormatVersion = %q, want 99.99", c.FileFormatVersion)
				}
			},
		},
		{
			name: "unknown fields tolerated",
			json: `{"ICD": {"library_path": "a.so", "api_version": "1.0.0", "unknown_icd_field": 1}, "unrelated": true}`,
			check: func(t *testing.T, c Candidate) {
				if c.LibraryPath != "a.so" {
					t.Errorf("LibraryPath = %q, want a.so", c.LibraryPath)
				}
			},
		},
		{
			name: "numeric api_version accepted",
			json: `{"ICD": {"library_path": "a.so", "api_version": 4206816}}`,
			check: func(t *testing.T, c Candidate) {
				if c.APIVersion != 4206816 {
					t.Errorf("APIVersion = %d, want 4206816", c.APIVersion)
				}
			},
		},
		{
			name:    "missing library_path",
			json:    `{"ICD": {"api_version": "1.0.0"}}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			json:    `not json`,
			wantErr: true,
		},
		{
			name:    "invalid api_version",
			json:    `{"ICD": {"library_path": "a.so", "api_version": "bogus"}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "manifest.json")
			if err := os.WriteFile(path, []byte(tt.json), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			c, err := parseManifest(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseManifest() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseManifest() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestParseAPIVersion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint32
		wantErr bool
	}{
		{name: "dotted", in: "1.2.3", want: (1 << 22) | (2 << 12) | 3},
		{name: "decimal packed", in: "4202496", want: 4202496},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "a.b.c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAPIVersion(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAPIVersion(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAPIVersion(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseAPIVersion(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
