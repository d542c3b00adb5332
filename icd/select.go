// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

// selectPrimary applies the selection policy from a list of loaded
// ICDs: a resolved preference wins outright; otherwise prefer hardware
// (highest API version, ties broken by discovery order) unless
// preferHardware is false or no hardware ICD loaded, in which case any
// software ICD is picked.
func selectPrimary(loaded []*LoadedICD, preferredIndex int, preferredPath string, preferHardware bool) *LoadedICD {
	if len(loaded) == 0 {
		return nil
	}

	if preferredIndex >= 0 {
		for _, icd := range loaded {
			if icd.info.Index == preferredIndex {
				return icd
			}
		}
	}
	if preferredPath != "" {
		for _, icd := range loaded {
			if icd.info.LibraryPath == preferredPath {
				return icd
			}
		}
	}

	if preferHardware {
		if best := bestByClassification(loaded, ClassificationHardware); best != nil {
			return best
		}
	}
	if best := bestByClassification(loaded, ClassificationSoftware); best != nil {
		return best
	}
	// Neither classification matched (e.g. preferHardware is false and
	// there is no software ICD either) — fall back to highest version
	// across everything loaded, in discovery order.
	return bestByClassification(loaded, ClassificationUnknown)
}

// bestByClassification returns the loaded ICD with the highest API
// version among those matching want, or — when want is
// ClassificationUnknown — among all loaded ICDs regardless of
// classification. Ties break toward earlier discovery order since
// loaded is already in that order.
func bestByClassification(loaded []*LoadedICD, want Classification) *LoadedICD {
	var best *LoadedICD
	for _, icd := range loaded {
		if want != ClassificationUnknown && icd.info.Classification != want {
			continue
		}
		if best == nil || icd.info.APIVersion > best.info.APIVersion {
			best = icd
		}
	}
	return best
}
