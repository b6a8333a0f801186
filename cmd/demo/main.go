package main

import (
	"log"

	"github.com/hubastard/pixeldemo/engine/colors"
	"github.com/hubastard/pixeldemo/engine/core"
)

const (
	windowTitle = "Ejemplo SDL2"
	screenW     = 800
	screenH     = 600

	circleRadius = 50

	rectSize   = 50
	rectY      = 200
	rectStartX = 100
	rectEndX   = 700
)

func main() {
	cfg := core.Config{
		Title:      windowTitle,
		Width:      screenW,
		Height:     screenH,
		VSync:      false,
		ClearColor: colors.Black,
	}

	if err := core.Run(NewScene(), cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
