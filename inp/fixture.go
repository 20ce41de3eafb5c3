// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads NURBS curve/surface fixtures from JSON files, the thin
// collaborator that feeds cmd/nurbsdemo and integration tests without
// holding any geometry logic of its own.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/gokernel/nurbs/curve"
	"github.com/gokernel/nurbs/knot"
	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/surface"
)

// CurveData is the wire format for a single NURBS curve (spec.md §3): a
// degree, a clamped knot vector and a control-point table given as flat
// [x,y,z] triples with an optional parallel weights array (nil/empty means
// all-ones).
type CurveData struct {
	Tag     int         `json:"tag"`
	Degree  int         `json:"degree"`
	Knots   []float64   `json:"knots"`
	Points  [][]float64 `json:"points"`
	Weights []float64   `json:"weights"`
}

// SurfaceData is the wire format for a tensor-product NURBS surface: a
// rectangular (NumU x NumV) control grid flattened row-major, unflattened
// with la.MatAlloc scratch during Build.
type SurfaceData struct {
	Tag      int         `json:"tag"`
	DegreeU  int         `json:"degreeU"`
	DegreeV  int         `json:"degreeV"`
	KnotsU   []float64   `json:"knotsU"`
	KnotsV   []float64   `json:"knotsV"`
	NumU     int         `json:"numU"`
	NumV     int         `json:"numV"`
	Points   [][]float64 `json:"points"`  // len == NumU*NumV, row-major over U then V
	Weights  []float64   `json:"weights"` // len == NumU*NumV or empty
}

// Fixture is the top-level document read from a .nurbs JSON file.
type Fixture struct {
	Desc     string        `json:"desc"`
	Params   fun.Prms      `json:"params"`
	Curves   []CurveData   `json:"curves"`
	Surfaces []SurfaceData `json:"surfaces"`
}

// ReadFixture reads and decodes a fixture from dir/fn (spec.md §6 external
// interfaces: fixture loading is an ambient collaborator, not core logic),
// following the same io.ReadFile + json.Unmarshal + chk.Err pattern as
// inp's original mesh reader.
func ReadFixture(dir, fn string) (*Fixture, error) {
	path := filepath.Join(dir, fn)
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read fixture file %q: %v", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, chk.Err("cannot parse fixture file %q: %v", path, err)
	}
	if len(f.Curves) == 0 && len(f.Surfaces) == 0 {
		return nil, chk.Err("fixture file %q defines no curves and no surfaces", path)
	}
	return &f, nil
}

// Param looks up a named scalar parameter, mirroring the material-database
// Find idiom used throughout the teacher's mdl packages.
func (f *Fixture) Param(name string) (*fun.P, error) {
	p := f.Params.Find(name)
	if p == nil {
		return nil, chk.Err("fixture parameter %q not found", name)
	}
	return p, nil
}

func point3(xyz []float64) numeric.Point3 {
	p := numeric.Point3{}
	if len(xyz) > 0 {
		p.X = xyz[0]
	}
	if len(xyz) > 1 {
		p.Y = xyz[1]
	}
	if len(xyz) > 2 {
		p.Z = xyz[2]
	}
	return p
}

// Build converts one CurveData record into a curve.Curve.
func (c CurveData) Build() (curve.Curve, error) {
	pts := make([]numeric.Point3, len(c.Points))
	for i, xyz := range c.Points {
		pts[i] = point3(xyz)
	}
	var weights []float64
	if len(c.Weights) > 0 {
		weights = c.Weights
	}
	return curve.New(c.Degree, knot.New(c.Knots), pts, weights)
}

// Build converts one SurfaceData record into a surface.Surface, unflattening
// the row-major point/weight tables with la.MatAlloc-backed scratch grids
// (mirroring inp's own grid-scratch idiom for control point tables).
func (s SurfaceData) Build() (surface.Surface, error) {
	if len(s.Points) != s.NumU*s.NumV {
		return surface.Surface{}, chk.Err(
			"surface %d: point table has %d entries, expected numU*numV=%d", s.Tag, len(s.Points), s.NumU*s.NumV)
	}
	gridX := la.MatAlloc(s.NumU, s.NumV)
	gridY := la.MatAlloc(s.NumU, s.NumV)
	gridZ := la.MatAlloc(s.NumU, s.NumV)
	weightGrid := la.MatAlloc(s.NumU, s.NumV)
	hasWeights := len(s.Weights) == s.NumU*s.NumV

	for i := 0; i < s.NumU; i++ {
		for j := 0; j < s.NumV; j++ {
			idx := i*s.NumV + j
			p := point3(s.Points[idx])
			gridX[i][j], gridY[i][j], gridZ[i][j] = p.X, p.Y, p.Z
			if hasWeights {
				weightGrid[i][j] = s.Weights[idx]
			} else {
				weightGrid[i][j] = 1
			}
		}
	}

	grid := make([][]numeric.Point3, s.NumU)
	var weights [][]float64
	if hasWeights {
		weights = make([][]float64, s.NumU)
	}
	for i := 0; i < s.NumU; i++ {
		grid[i] = make([]numeric.Point3, s.NumV)
		if hasWeights {
			weights[i] = make([]float64, s.NumV)
		}
		for j := 0; j < s.NumV; j++ {
			grid[i][j] = numeric.Point3{X: gridX[i][j], Y: gridY[i][j], Z: gridZ[i][j]}
			if hasWeights {
				weights[i][j] = weightGrid[i][j]
			}
		}
	}
	return surface.New(s.DegreeU, s.DegreeV, knot.New(s.KnotsU), knot.New(s.KnotsV), grid, weights)
}

// BuildCurves converts every curve record in the fixture.
func (f *Fixture) BuildCurves() ([]curve.Curve, error) {
	out := make([]curve.Curve, len(f.Curves))
	for i, c := range f.Curves {
		built, err := c.Build()
		if err != nil {
			return nil, chk.Err("curve %d (tag=%d): %v", i, c.Tag, err)
		}
		out[i] = built
	}
	return out, nil
}

// BuildSurfaces converts every surface record in the fixture.
func (f *Fixture) BuildSurfaces() ([]surface.Surface, error) {
	out := make([]surface.Surface, len(f.Surfaces))
	for i, s := range f.Surfaces {
		built, err := s.Build()
		if err != nil {
			return nil, chk.Err("surface %d (tag=%d): %v", i, s.Tag, err)
		}
		out[i] = built
	}
	return out, nil
}
