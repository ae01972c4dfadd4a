package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/boulderdash/internal/boulder"
)

var flagRenderOut string

var renderCmd = &cobra.Command{
	Use:   "render <level-file> --out <file.png>",
	Short: "Render a level's board to a PNG image",
	Long: `Parse the level file, blit the sprite grid via the core's to_image
projection, and PNG-encode it to the given path.

Examples:
  boulderdash render level.txt --out board.png`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderOut, "out", "board.png", "Output PNG path")
}

func runRender(cmd *cobra.Command, args []string) {
	levelPath := args[0]

	levelData, err := os.ReadFile(levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", levelPath, err)
		os.Exit(1)
	}

	st, err := boulder.New(strings.TrimSpace(string(levelData)), boulder.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid level: %v\n", err)
		os.Exit(1)
	}

	height, width, _ := st.ImageShape()
	pixels := st.ToImage()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (y*width + x) * 3
			img.Set(x, y, color.RGBA{R: pixels[o], G: pixels[o+1], B: pixels[o+2], A: 255})
		}
	}

	f, err := os.Create(flagRenderOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", flagRenderOut, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d)\n", flagRenderOut, width, height)
}
