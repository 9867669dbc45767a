// internal/assets/sprites.go
package assets

import (
	"fmt"
	_ "image/png"
	"log"
	"path/filepath"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/pkg/render"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteFiles maps each animated target kind to its image under the assets
// directory. Static targets are drawn as discs.
var SpriteFiles = map[component.Kind]string{
	component.KindButterfly: config.ButterflyFile,
	component.KindBird:      config.BirdFile,
}

// LoadSprites reads every sprite in SpriteFiles from dir. A missing or
// unreadable file is an error.
func LoadSprites(dir string) (map[component.Kind]render.Sprite, error) {
	sprites := make(map[component.Kind]render.Sprite, len(SpriteFiles))
	for kind, name := range SpriteFiles {
		path := filepath.Join(dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s sprite: %w", kind, err)
		}
		sprites[kind] = img
		log.Printf("Loaded %s sprite from %s (%dx%d)", kind, path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return sprites, nil
}
