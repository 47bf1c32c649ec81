// seehuhn.de/go/trirender - triangle rasterization to BMP files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command trirender renders a scene of filled triangles to a BMP file.
//
// Without the -scene flag, a single yellow triangle on a 1000×1000 canvas
// is written to triangle.bmp.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"seehuhn.de/go/trirender"
	"seehuhn.de/go/trirender/bmp"
)

func main() {
	var (
		sceneFile = flag.String("scene", "", "JSON scene file (default: built-in scene)")
		output    = flag.String("o", "", "output file, overrides the scene")
		width     = flag.Int("width", -1, "canvas width, overrides the scene if non-negative")
		height    = flag.Int("height", -1, "canvas height, overrides the scene if non-negative")
		bottomUp  = flag.Bool("bottom-up", false, "write the bottom row first, so that viewers show the image upright")
		verbose   = flag.Bool("v", false, "log every triangle")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	trirender.SetLogger(logger)

	scene := trirender.DefaultScene()
	if *sceneFile != "" {
		var err error
		scene, err = trirender.LoadScene(*sceneFile)
		if err != nil {
			logger.Error("cannot load scene", "error", err)
			os.Exit(1)
		}
	}
	applyOverrides(scene, *output, *width, *height)

	enc := &bmp.Encoder{}
	if *bottomUp {
		enc.Order = bmp.BottomUp
	}

	start := time.Now()
	if err := trirender.RenderFile(scene, enc); err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done",
		"triangles", len(scene.Triangles),
		"elapsed", time.Since(start).Round(time.Millisecond))
}

// applyOverrides replaces the scene settings given on the command line.
// An empty output and negative sizes leave the scene unchanged.
func applyOverrides(scene *trirender.Scene, output string, width, height int) {
	if output != "" {
		scene.Output = output
	}
	if width >= 0 {
		scene.Width = width
	}
	if height >= 0 {
		scene.Height = height
	}
}
