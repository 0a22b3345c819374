// seehuhn.de/go/raster3d - a software triangle rasterizer
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

// Command export renders all test cases to image files.
// Run from the raster3d module root directory.
//
// Settings can be given in a TOML file, for example:
//
//	width = 320
//	height = 180
//	precision = "fixed"
//	format = "bmp"
//	orbit = 30
//	clear = [32, 32, 48, 255]
//	only = ["cube", "clip"]
//
// Command line flags override the file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/testcases"
)

// config holds the render settings.  Zero values keep the defaults of the
// individual test cases.
type config struct {
	Out       string   `toml:"out"`
	Width     int      `toml:"width"`
	Height    int      `toml:"height"`
	Precision string   `toml:"precision"` // "float" or "fixed"
	Format    string   `toml:"format"`    // "png" or "bmp"
	Orbit     float32  `toml:"orbit"`     // camera rotation about the Y axis, in degrees
	FovY      float32  `toml:"fov"`       // vertical field of view, in degrees
	Clear     [4]uint8 `toml:"clear"`     // RGBA clear colour
	Only      []string `toml:"only"`      // categories to render, all if empty
}

func main() {
	var cfg config
	cfg.Out = "testdata/out"
	cfg.Precision = "float"
	cfg.Format = "png"
	cfg.Clear = [4]uint8{0, 0, 0, 255}

	configFile := flag.String("config", "", "TOML file with render settings")
	out := flag.String("out", cfg.Out, "output `directory`")
	fixed := flag.Bool("fixed", false, "use the fixed-point triangle setup")
	format := flag.String("format", cfg.Format, "output format, png or bmp")
	verbose := flag.Bool("v", false, "log every draw call")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	raster3d.SetLogger(logger)

	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			logger.Error("reading config", "file", *configFile, "error", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Out = *out
		case "fixed":
			if *fixed {
				cfg.Precision = "fixed"
			}
		case "format":
			cfg.Format = *format
		}
	})

	if err := run(&cfg, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(fname string, cfg *config) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}

func run(cfg *config, logger *slog.Logger) error {
	r := raster3d.NewRasterizer()
	switch cfg.Precision {
	case "float":
		r.Precision = raster3d.PrecisionFloat
	case "fixed":
		r.Precision = raster3d.PrecisionFixed
	default:
		return fmt.Errorf("unknown precision %q", cfg.Precision)
	}
	if cfg.Format != "png" && cfg.Format != "bmp" {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	if err := os.MkdirAll(cfg.Out, 0755); err != nil {
		return err
	}

	clearColor := color.RGBA{R: cfg.Clear[0], G: cfg.Clear[1], B: cfg.Clear[2], A: cfg.Clear[3]}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if len(cfg.Only) > 0 && !slices.Contains(cfg.Only, category) {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if cfg.Width > 0 && cfg.Height > 0 {
				tc.Width, tc.Height = cfg.Width, cfg.Height
			}
			if cfg.FovY > 0 {
				tc.Frame.FovY = cfg.FovY
			}
			tc.Frame.OrbitY(cfg.Orbit)

			t := raster3d.NewTarget(tc.Width, tc.Height)
			t.Clear(raster3d.DepthClear, clearColor)

			r.Stats = raster3d.Stats{}
			start := time.Now()
			if err := tc.Render(r, t); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("rendered",
				"name", name,
				"size", fmt.Sprintf("%dx%d", tc.Width, tc.Height),
				"fragments", r.Stats.Fragments,
				"duration", time.Since(start))

			fname := filepath.Join(cfg.Out, name+"."+cfg.Format)
			if err := writeImage(fname, t.Image(), cfg.Format); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func writeImage(fname string, img image.Image, format string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == "bmp" {
		return bmp.Encode(f, img)
	}
	return png.Encode(f, img)
}
