// internal/rlfront/textures.go
package rlfront

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Texture is a GPU texture usable as a target sprite.
type Texture struct {
	rl.Texture2D
}

func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(t.Width), int(t.Height))
}

var spriteFiles = map[component.Kind]string{
	component.KindButterfly: config.ButterflyFile,
	component.KindBird:      config.BirdFile,
}

// TextureManager loads target textures and unloads them on Cleanup. It needs
// an open window.
type TextureManager struct {
	textures map[component.Kind]*Texture
}

func NewTextureManager() *TextureManager {
	return &TextureManager{textures: make(map[component.Kind]*Texture)}
}

// LoadSprites loads every target texture from dir. Textures already loaded
// are reused.
func (m *TextureManager) LoadSprites(dir string) (map[component.Kind]render.Sprite, error) {
	sprites := make(map[component.Kind]render.Sprite, len(spriteFiles))
	for kind, name := range spriteFiles {
		if tex, ok := m.textures[kind]; ok {
			sprites[kind] = tex
			continue
		}
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("load %s sprite: %w", kind, err)
		}
		tex := &Texture{Texture2D: rl.LoadTexture(path)}
		if tex.ID == 0 {
			return nil, fmt.Errorf("load %s sprite: raylib could not decode %s", kind, path)
		}
		m.textures[kind] = tex
		sprites[kind] = tex
		log.Printf("Loaded %s texture from %s (%dx%d)", kind, path, tex.Width, tex.Height)
	}
	return sprites, nil
}

// Cleanup unloads every texture.
func (m *TextureManager) Cleanup() {
	for kind, tex := range m.textures {
		rl.UnloadTexture(tex.Texture2D)
		delete(m.textures, kind)
	}
	log.Println("All textures unloaded.")
}
