package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontName keys a fixed-size freetype face used by the overlay text
type FontName string

const (
	Mono      FontName = "mono"
	MonoSmall FontName = "mono-small"
	MonoBold  FontName = "mono-bold"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	mono    *text.GoTextFaceSource
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// LoadAll loads the overlay faces and the text/v2 sources used by the interface
func LoadAll(overlaySize, tooltipSize float64) error {
	if err := LoadFontWithSize(Mono, gomono.TTF, overlaySize); err != nil {
		return err
	}
	if err := LoadFontWithSize(MonoSmall, gomono.TTF, tooltipSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(MonoBold, gobold.TTF, tooltipSize); err != nil {
		return err
	}

	var err error
	if regular, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load regular source: %w", err)
	}
	if bold, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold source: %w", err)
	}
	if mono, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono source: %w", err)
	}
	return nil
}

// Regular returns a regular weight face of the given size. LoadAll must have run.
func Regular(size float64) text.Face {
	return &text.GoTextFace{Source: regular, Size: size}
}

// Bold returns a bold face of the given size
func Bold(size float64) text.Face {
	return &text.GoTextFace{Source: bold, Size: size}
}

// Glyph returns the monospace face neuron glyphs are drawn with
func Glyph(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: mono, Size: size}
}
