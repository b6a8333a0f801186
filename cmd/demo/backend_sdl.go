//go:build sdl

package main

import (
	"github.com/hubastard/pixeldemo/engine/core"
	sdlbackend "github.com/hubastard/pixeldemo/engine/gfx/sdl"
	"github.com/hubastard/pixeldemo/engine/platform"
)

func newWindow(cfg core.Config) (core.Window, error) {
	return platform.NewSDLWindow(cfg, nil)
}

func newRenderer(win core.Window, cfg core.Config) (core.Renderer, error) {
	return sdlbackend.NewRendererSDL(win, cfg)
}
