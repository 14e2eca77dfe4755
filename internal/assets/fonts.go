package assets

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager парсит встроенный TTF один раз и кэширует начертания по размеру.
type FontManager struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager парсит Go Regular. При ошибке разбора все начертания
// заменяются на basicfont.
func NewFontManager() *FontManager {
	m := &FontManager{faces: make(map[float64]font.Face)}
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Failed to parse embedded font, falling back to basicfont: %v", err)
		return m
	}
	m.font = tt
	return m
}

// Face возвращает начертание заданного размера.
func (m *FontManager) Face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := m.newFace(size)
	if err != nil {
		log.Printf("Failed to create font face of size %.0f: %v", size, err)
		face = basicfont.Face7x13
	}
	m.faces[size] = face
	return face
}

func (m *FontManager) newFace(size float64) (font.Face, error) {
	if m.font == nil {
		return nil, fmt.Errorf("no font loaded")
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// MeasureString возвращает ширину строки в пикселях для начертания.
func MeasureString(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
