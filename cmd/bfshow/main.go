package main

import (
	"flag"
	"fmt"
	"os"

	"boxflex/pkg/render"
	"boxflex/pkg/script"
)

func main() {
	width := flag.Int("w", 800, "canvas width in pixels")
	height := flag.Int("h", 600, "canvas height in pixels")
	output := flag.String("o", "output.png", "output PNG file path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bfshow [flags] <scene.js>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
		os.Exit(1)
	}

	engine := script.New()
	if err := engine.Run(string(src)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
		os.Exit(1)
	}
	root, ok := engine.Root()
	if !ok {
		fmt.Fprintf(os.Stderr, "Script never called scene.layout\n")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Rendering %dx%d...\n", *width, *height)
	renderer := render.NewRenderer(*width, *height)
	renderer.Render(root)
	if err := renderer.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved to %s\n", *output)
}
