// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"strings"
)

// EdgePolicy decides what a window read or write does when it falls
// outside the grid.
type EdgePolicy uint8

const (
	// EdgeClamp replaces an outside coordinate with the nearest edge pixel.
	EdgeClamp EdgePolicy = iota

	// EdgeWrap wraps outside coordinates around to the opposite edge.
	EdgeWrap

	// EdgeReject fails the access with an *OutOfBoundsError.
	EdgeReject
)

// String returns the policy name as accepted by ParseEdgePolicy.
func (p EdgePolicy) String() string {
	switch p {
	case EdgeClamp:
		return "clamp"
	case EdgeWrap:
		return "wrap"
	case EdgeReject:
		return "reject"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
	}
}

// IsValid reports whether p is a known policy.
func (p EdgePolicy) IsValid() bool {
	return p <= EdgeReject
}

// ParseEdgePolicy parses "clamp", "wrap" or "reject" (case-insensitive).
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return EdgeClamp, nil
	case "wrap":
		return EdgeWrap, nil
	case "reject":
		return EdgeReject, nil
	default:
		return 0, fmt.Errorf("stencil: unknown edge policy %q", s)
	}
}

// Resolve maps coordinate v onto [0, n).
// ok is false only for EdgeReject when v is outside the range.
func (p EdgePolicy) Resolve(v, n int) (int, bool) {
	if v >= 0 && v < n {
		return v, true
	}

	switch p {
	case EdgeWrap:
		v %= n
		if v < 0 {
			v += n
		}
		return v, true
	case EdgeReject:
		return v, false
	default:
		if v < 0 {
			return 0, true
		}
		return n - 1, true
	}
}
