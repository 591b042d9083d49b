// Atlas preview tool - rasterizes the glyph atlas for a text to a PNG file.
//
// Usage: go run ./cmd/atlaspreview -text "hello world" -out atlas.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/atlas"
	"github.com/icedtinat/lumina/glyph"
)

func main() {
	text := flag.String("text", "To see a World in a Grain of Sand", "Source text for the glyph set")
	outPath := flag.String("out", "atlas.png", "Output PNG path")
	size := flag.Int("size", 1024, "Atlas texture size in pixels")
	fontPath := flag.String("font", "", "Optional TTF font path")
	flag.Parse()

	glyphs := glyph.Extract(*text)
	if len(glyphs) == 0 {
		fmt.Fprintf(os.Stderr, "No glyphs extracted from text\n")
		os.Exit(1)
	}

	// Initialize raylib with hidden window; font rasterization needs a GL context
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*size), int32(*size), "Atlas Preview")
	defer rl.CloseWindow()

	font := rl.GetFontDefault()
	if *fontPath != "" {
		font = rl.LoadFontEx(*fontPath, 256, glyphs)
		defer rl.UnloadFont(font)
	}

	img := atlas.BuildImage(glyphs, atlas.Options{
		Size: int32(*size),
		Font: font,
	})
	defer rl.UnloadImage(img)

	if !rl.ExportImage(*img, *outPath) {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
	fmt.Printf("Atlas with %d glyphs written to: %s (%dx%d)\n", len(glyphs), *outPath, *size, *size)
}
