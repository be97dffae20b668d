package main

import (
	"fmt"
	"os"
	"strings"

	"boxflex/pkg/flex"
	"boxflex/pkg/script"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <scene.js>\n", os.Args[0])
		os.Exit(1)
	}
	src, err := os.ReadFile(os.Args[1])
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
	printTree(root, 0)
}

func printTree(n flex.Node, depth int) {
	fmt.Printf("%s(%.2f, %.2f) %.2fx%.2f\n",
		strings.Repeat("  ", depth),
		n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight())
	for i := 0; i < n.ChildCount(); i++ {
		printTree(n.Child(i), depth+1)
	}
}
