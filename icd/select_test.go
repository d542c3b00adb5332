// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import "testing"

func mkLoaded(index int, apiVersion uint32, class Classification, path string) *LoadedICD {
	return &LoadedICD{info: IcdInfo{
		Index:          index,
		LibraryPath:    path,
		APIVersion:     apiVersion,
		Classification: class,
	}}
}

func TestSelectPrimary(t *testing.T) {
	hw1 := mkLoaded(0, 4202496, ClassificationHardware, "/usr/lib/hw1.so")  // 1.2.0
	hw2 := mkLoaded(1, 4210688, ClassificationHardware, "/usr/lib/hw2.so")  // 1.4.0
	sw := mkLoaded(2, 4194304, ClassificationSoftware, "/usr/lib/sw.so")    // 1.0.0

	tests := []struct {
		name           string
		loaded         []*LoadedICD
		preferredIndex int
		preferredPath  string
		preferHardware bool
		want           *LoadedICD
	}{
		{
			name:           "highest version hardware wins",
			loaded:         []*LoadedICD{hw1, hw2, sw},
			preferredIndex: -1,
			preferHardware: true,
			want:           hw2,
		},
		{
			name:           "software only when no hardware loaded",
			loaded:         []*LoadedICD{sw},
			preferredIndex: -1,
			preferHardware: true,
			want:           sw,
		},
		{
			name:           "preferred index wins outright",
			loaded:         []*LoadedICD{hw1, hw2, sw},
			preferredIndex: 2,
			preferHardware: true,
			want:           sw,
		},
		{
			name:           "preferred path wins outright",
			loaded:         []*LoadedICD{hw1, hw2, sw},
			preferredIndex: -1,
			preferredPath:  "/usr/lib/hw1.so",
			preferHardware: true,
			want:           hw1,
		},
		{
			name:           "prefer-hardware false still falls back when no software loaded",
			loaded:         []*LoadedICD{hw1, hw2},
			preferredIndex: -1,
			preferHardware: false,
			want:           hw2,
		},
		{
			name:           "empty registry yields nil",
			loaded:         nil,
			preferredIndex: -1,
			want:           nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectPrimary(tt.loaded, tt.preferredIndex, tt.preferredPath, tt.preferHardware)
			if got != tt.want {
				t.Errorf("selectPrimary() = %v, want %v", got, tt.want)
			}
		})
	}
}
