package main

import (
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"boxflex/pkg/render"
	"boxflex/pkg/script"
)

const (
	viewWidth  = 800
	viewHeight = 600
)

func main() {
	a := app.New()
	w := a.NewWindow("boxflex viewer")
	w.Resize(fyne.NewSize(1024, 768))

	target := image.NewRGBA(image.Rect(0, 0, viewWidth, viewHeight))
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a scene script path and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("scene.js")
	pathEntry.OnSubmitted = func(path string) {
		status.SetText("Loading " + path + "...")
		go func() {
			src, err := os.ReadFile(path)
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}
			engine := script.New()
			if err := engine.Run(string(src)); err != nil {
				status.SetText("Script error: " + err.Error())
				return
			}
			root, ok := engine.Root()
			if !ok {
				status.SetText("Script never called scene.layout")
				return
			}

			renderer := render.NewRenderer(viewWidth, viewHeight)
			renderer.Render(root)

			canvasImg.Image = renderer.Image()
			canvasImg.Refresh()
			status.SetText(path)
			w.SetTitle("boxflex viewer - " + path)
		}()
	}

	topBar := container.NewBorder(nil, nil, nil, nil, pathEntry)
	content := container.NewBorder(topBar, status, nil, nil, canvasImg)
	w.SetContent(content)

	// Keep focus on the entry to prevent Tab freeze with no other focusable widgets
	w.Canvas().Focus(pathEntry)

	w.ShowAndRun()
}
