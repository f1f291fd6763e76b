// Copyright (c) 2025, The Vispy Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config handles viewer configuration: defaults, YAML files, and
// environment overrides, plus construction of the configured camera.
package config

import (
	"fmt"

	"github.com/rowhit/vispy/camera"
	"github.com/rowhit/vispy/logger"
	"github.com/rowhit/vispy/transform"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging logger.Config `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig selects and parameterizes the camera bound to the viewer's
// viewbox. Fields that do not apply to the selected type are ignored.
type CameraConfig struct {
	// Type is the camera type name passed to [camera.New].
	Type string `yaml:"type"`

	// Rect is the scene window of a panzoom camera, as x, y, width,
	// height.
	Rect []float32 `yaml:"rect"`

	// Azimuth, Elevation, and Distance set the orbit of a turntable
	// camera, and Mode and FOV its projection ("ortho" or "perspective").
	Azimuth   float32 `yaml:"azimuth"`
	Elevation float32 `yaml:"elevation"`
	Distance  float32 `yaml:"distance"`
	Mode      string  `yaml:"mode"`
	FOV       float32 `yaml:"fov"`
}

// Default returns a Config with the default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "scene viewer",
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			Type:      "panzoom",
			Rect:      []float32{0, 0, 1, 1},
			Azimuth:   30,
			Elevation: 30,
			Distance:  10,
			Mode:      "ortho",
			FOV:       60,
		},
		Logging: logger.Default(),
	}
}

// Build constructs and parameterizes the configured camera.
func (c CameraConfig) Build() (camera.Camera, error) {
	cam, err := camera.New(c.Type)
	if err != nil {
		return nil, err
	}
	switch cam := cam.(type) {
	case *camera.PanZoom:
		if len(c.Rect) != 4 {
			return nil, fmt.Errorf("config: camera rect needs 4 values, got %d", len(c.Rect))
		}
		cam.SetRect(transform.NewRect(c.Rect[0], c.Rect[1], c.Rect[2], c.Rect[3]))
	case *camera.Turntable:
		cam.SetAzimuth(c.Azimuth)
		cam.SetElevation(c.Elevation)
		cam.SetDistance(c.Distance)
		cam.Persp.FOV = c.FOV
		mode, err := parseMode(c.Mode)
		if err != nil {
			return nil, err
		}
		cam.SetMode(mode)
	}
	return cam, nil
}

func parseMode(name string) (camera.Mode, error) {
	switch name {
	case "ortho":
		return camera.Orthographic, nil
	case "perspective":
		return camera.PerspectiveProjection, nil
	}
	return 0, fmt.Errorf("config: unknown projection mode %q", name)
}
