// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nurbsdemo loads a NURBS fixture file, evaluates and samples its curves,
// runs a bounding-volume plane traversal of each curve against z=0 and
// reports the surviving sub-curve count, prints each surface's bounding
// box, and writes a short report with gosl/io.
package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gokernel/nurbs/bvh"
	"github.com/gokernel/nurbs/inp"
	"github.com/gokernel/nurbs/numeric"
	"github.com/gokernel/nurbs/sample"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nnurbsdemo -- NURBS curve/surface kernel demo\n\n")

	// fixture filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		fnamepath = "quarter_circle.nurbs"
	}
	dir, fn := filepath.Split(fnamepath)
	if dir == "" {
		dir = "data"
	}

	f, err := inp.ReadFixture(dir, fn)
	if err != nil {
		chk.Panic("cannot read fixture: %v", err)
	}
	io.Pfcyan("fixture: %s\n", f.Desc)

	tol := 1e-6
	if p, err := f.Param("tol"); err == nil {
		tol = p.V
	}
	io.Pfyel("tolerance = %v\n\n", tol)

	curves, err := f.BuildCurves()
	if err != nil {
		chk.Panic("cannot build curves: %v", err)
	}
	surfaces, err := f.BuildSurfaces()
	if err != nil {
		chk.Panic("cannot build surfaces: %v", err)
	}

	for i, c := range curves {
		dom := c.Domain()
		p0, _ := c.PointAt(dom.T0)
		p1, _ := c.PointAt(dom.T1)
		io.Pforan("curve %d: degree=%d  C(t0)=%v  C(t1)=%v\n", i, c.Degree(), p0, p1)

		ts, _, err := sample.RegularSample(c, 5)
		if err != nil {
			chk.Panic("cannot sample curve %d: %v", i, err)
		}
		io.Pf("  regular samples at t = %v\n", ts)

		plane := numeric.NewPlane(numeric.Point3{}, numeric.Vec3{X: 0, Y: 0, Z: 1})
		candidates, err := bvh.PlaneTraverseCurve(c, plane, tol, sample.NewDefaultSource())
		if err != nil {
			chk.Panic("plane traversal failed for curve %d: %v", i, err)
		}
		io.Pf("  %d candidate sub-curve(s) near the z=0 plane\n", len(candidates))
	}

	for i, s := range surfaces {
		box := s.BoundingBox()
		lo, hi := box.Diagonal()
		io.Pfgreen("surface %d: degree=(%d,%d)  box=[%v .. %v]\n", i, s.DegreeU(), s.DegreeV(), lo, hi)
	}

	io.Pf("\ndone.\n")
}
