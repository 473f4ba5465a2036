package dvdsaver

import (
	"bytes"
	_ "embed"
	"fmt"
	_ "image/png"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed assets/dvd_logo.png
var defaultLogo []byte

// LoadLogo decodes the logo texture at path. An empty path selects the
// built-in logo.
func LoadLogo(path string) (*ebiten.Image, error) {
	var r io.Reader
	name := "built-in logo"
	if path == "" {
		r = bytes.NewReader(defaultLogo)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open logo: %w", err)
		}
		defer f.Close()
		r = f
		name = path
	}

	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
