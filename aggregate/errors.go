// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package aggregate

import "errors"

// ErrAggregationPartial indicates at least one loaded ICD failed to
// create its native instance while at least one other succeeded. The
// meta-instance remains usable; MetaInstance.Failed reports which ICDs
// were skipped.
var ErrAggregationPartial = errors.New("aggregate: one or more ICDs failed to create an instance")

// ErrAggregationFailed indicates every loaded ICD failed to create its
// native instance; the meta-instance is unusable.
var ErrAggregationFailed = errors.New("aggregate: no ICD succeeded creating an instance")
