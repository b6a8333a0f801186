//go:build !sdl

package main

import (
	"github.com/hubastard/pixeldemo/engine/core"
	glbackend "github.com/hubastard/pixeldemo/engine/gfx/gl"
	"github.com/hubastard/pixeldemo/engine/platform"
)

func newWindow(cfg core.Config) (core.Window, error) {
	return platform.NewGLFWWindow(cfg, nil)
}

func newRenderer(win core.Window, cfg core.Config) (core.Renderer, error) {
	return glbackend.NewRendererGL(win, cfg)
}
