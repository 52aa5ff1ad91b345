package game

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/colorator/internal/raster"
	"github.com/iburimskiy/colorator/internal/wheel"
)

var errEmptyWheel = errors.New("wheel has no area to export")

// WritePNG rasterizes the widget's current draw list at its own size and
// writes it to path.
func WritePNG(path string, w *wheel.Widget) (err error) {
	width, height := layerSize(w.Geometry())
	if width <= 0 || height <= 0 {
		return errEmptyWheel
	}
	img := raster.Draw(w.Render(), width, height)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// saveDialog asks for a destination and exports the wheel there. Cancelling
// the dialog is not an error.
func (g *Game) saveDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Color Wheel"),
		zenity.Filename("colorator.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	if err := WritePNG(path, g.widget); err != nil {
		return err
	}
	logInfo("saved %s", path)
	return nil
}
