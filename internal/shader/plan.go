// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrFormatMismatch is returned when grid formats differ from a kernel's bindings.
var ErrFormatMismatch = errors.New("shader: texture format mismatch")

// Binding is one bind group entry of a Plan.
type Binding struct {
	Binding    uint32 `json:"binding"`
	Visibility string `json:"visibility"`
	Type       string `json:"type"`
}

// Plan describes one dispatch of a kernel over a grid, in the form a host
// GPU runtime needs to create the pipeline and bind group.
type Plan struct {
	Kernel        string    `json:"kernel"`
	EntryPoint    string    `json:"entryPoint"`
	Input         string    `json:"input"`
	Output        string    `json:"output"`
	WorkgroupSize [3]uint32 `json:"workgroupSize"`
	Workgroups    [3]uint32 `json:"workgroups"`
	Params        Params    `json:"params"`
	Uniform       []byte    `json:"uniform"`
	Bindings      []Binding `json:"bindings"`
}

// NewPlan builds the plan of the named kernel for grids with the given
// texture formats. in and out must match the kernel's bindings.
func NewPlan(name string, in, out gputypes.TextureFormat, p Params) (Plan, error) {
	s, err := Lookup(name)
	if err != nil {
		return Plan{}, err
	}
	if in != s.Input || out != s.Output {
		return Plan{}, fmt.Errorf("%w: %s wants %v -> %v, got %v -> %v",
			ErrFormatMismatch, name, s.Input, s.Output, in, out)
	}

	entries, err := Layout(name)
	if err != nil {
		return Plan{}, err
	}
	bindings := make([]Binding, 0, len(entries))
	for _, e := range entries {
		b := Binding{Binding: e.Binding, Visibility: e.Visibility.String()}
		if e.Buffer != nil {
			b.Type = e.Buffer.Type.String()
		}
		bindings = append(bindings, b)
	}

	x, y := Workgroups(int(p.Width), int(p.Height))
	return Plan{
		Kernel:        s.Name,
		EntryPoint:    s.EntryPoint,
		Input:         s.Input.String(),
		Output:        s.Output.String(),
		WorkgroupSize: [3]uint32{WorkgroupSize, WorkgroupSize, 1},
		Workgroups:    [3]uint32{x, y, 1},
		Params:        p,
		Uniform:       p.Bytes(),
		Bindings:      bindings,
	}, nil
}
