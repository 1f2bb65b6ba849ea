//go:build sdl2
// +build sdl2

// Command view opens an SDL2 window and blits a raster2d.DrawTarget's
// buffer each frame, adapted from the teacher's
// examples/platform/sdl2/main.go + internal/platform/sdl2: a window,
// a streaming texture the size of the window, and a poll-driven event
// loop that redraws on demand instead of continuously.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	raster2d "github.com/lumenvec/raster2d"
	"github.com/lumenvec/raster2d/internal/demoscenes"
)

func main() {
	width := flag.Int("w", 640, "window width")
	height := flag.Int("h", 480, "window height")
	scene := flag.String("scene", "solid", "initial scene: "+strings.Join(demoscenes.Names, ", "))
	flag.Parse()

	if err := run(*width, *height, *scene); err != nil {
		log.Fatal(err)
	}
}

func run(width, height int, initialScene string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("raster2d viewer", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, texW, texH, err := newTexture(renderer, width, height)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	sceneIdx := sceneIndex(initialScene)
	dt := raster2d.NewDrawTarget(texW, texH)
	redraw := true

	fmt.Println("raster2d viewer")
	fmt.Println("  space: next scene   ESC / close: quit")

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					texture.Destroy()
					texture, texW, texH, err = newTexture(renderer, int(e.Data1), int(e.Data2))
					if err != nil {
						return fmt.Errorf("resize texture: %w", err)
					}
					dt = raster2d.NewDrawTarget(texW, texH)
					redraw = true
				}
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_SPACE:
					sceneIdx = (sceneIdx + 1) % len(demoscenes.Names)
					redraw = true
				}
			}
		}

		if redraw {
			demoscenes.Draw(demoscenes.Names[sceneIdx], dt)
			if err := texture.Update(nil, dt.Bytes(), texW*4); err != nil {
				return fmt.Errorf("update texture: %w", err)
			}
			redraw = false
		}

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}
	return nil
}

func newTexture(renderer *sdl.Renderer, width, height int) (*sdl.Texture, int, int, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	return tex, width, height, err
}

func sceneIndex(name string) int {
	for i, n := range demoscenes.Names {
		if n == name {
			return i
		}
	}
	return 0
}
