// Command render draws one of a small fixed set of built-in demo
// scenes into a raster2d.DrawTarget and writes the result to a PNG
// file, in the spirit of the teacher's examples/core/basic demos but
// driven by flags instead of being one binary per demo.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	raster2d "github.com/lumenvec/raster2d"
	"github.com/lumenvec/raster2d/internal/demoscenes"
)

func main() {
	width := flag.Int("w", 400, "output width in pixels")
	height := flag.Int("h", 300, "output height in pixels")
	out := flag.String("out", "out.png", "output PNG path")
	scene := flag.String("scene", "solid", "scene to render: "+strings.Join(demoscenes.Names, ", "))
	flag.Parse()

	dt := raster2d.NewDrawTarget(*width, *height)
	if !demoscenes.Draw(*scene, dt) {
		log.Fatalf("unknown scene %q (want one of: %s)", *scene, strings.Join(demoscenes.Names, ", "))
	}

	if err := raster2d.SaveToPNG(dt, *out); err != nil {
		log.Fatalf("saving %s: %v", *out, err)
	}
	fmt.Printf("wrote %s (%dx%d, scene=%s)\n", *out, *width, *height, *scene)
}
