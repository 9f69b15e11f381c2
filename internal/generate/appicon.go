package generate

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// iconSlot is one entry in the fixed macOS app-icon matrix.
type iconSlot struct {
	Size  int // point size
	Scale int // 1 or 2
}

// macIconSlots is the matrix Xcode expects for a mac idiom icon set.
var macIconSlots = []iconSlot{
	{16, 1}, {16, 2},
	{32, 1}, {32, 2},
	{128, 1}, {128, 2},
	{256, 1}, {256, 2},
	{512, 1}, {512, 2},
}

func (s iconSlot) pixels() int { return s.Size * s.Scale }

func (s iconSlot) filename() string {
	if s.Scale == 1 {
		return fmt.Sprintf("icon_%dx%d.png", s.Size, s.Size)
	}
	return fmt.Sprintf("icon_%dx%d@%dx.png", s.Size, s.Size, s.Scale)
}

// IconResult reports what AppIcon produced.
type IconResult struct {
	CatalogDir string
	Warnings   []string
}

// AppIcon re-samples the source PNG into the fixed macOS icon matrix and
// writes Assets.xcassets/AppIcon.appiconset/ under genDir. Slots larger
// than the source are filled with the source untouched rather than
// upscaled, with a warning.
func AppIcon(srcPNG, genDir string) (*IconResult, error) {
	f, err := os.Open(srcPNG)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon %s: %w", srcPNG, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("icon %s is not a valid PNG: %w", srcPNG, err)
	}

	catalogDir := filepath.Join(genDir, "Assets.xcassets")
	setDir := filepath.Join(catalogDir, "AppIcon.appiconset")
	if err := os.MkdirAll(setDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset catalog: %w", err)
	}

	result := &IconResult{CatalogDir: catalogDir}
	srcSide := minSide(src.Bounds())

	for _, slot := range macIconSlots {
		outPath := filepath.Join(setDir, slot.filename())
		img := src
		if slot.pixels() > srcSide {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("icon source is %dpx, too small for %dx%d@%dx; using it unscaled", srcSide, slot.Size, slot.Size, slot.Scale))
		} else if slot.pixels() != srcSide {
			img = resample(src, slot.pixels())
		}
		if err := writePNG(outPath, img); err != nil {
			return nil, err
		}
	}

	if err := writeIconContents(setDir); err != nil {
		return nil, err
	}
	if err := writeCatalogContents(catalogDir); err != nil {
		return nil, err
	}
	return result, nil
}

// resample scales src to a square side x side image with Catmull-Rom
// interpolation.
func resample(src image.Image, side int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func minSide(b image.Rectangle) int {
	w, h := b.Dx(), b.Dy()
	if w < h {
		return w
	}
	return h
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// assetImage is one entry in an appiconset Contents.json.
type assetImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type assetInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

func writeIconContents(setDir string) error {
	images := make([]assetImage, 0, len(macIconSlots))
	for _, slot := range macIconSlots {
		images = append(images, assetImage{
			Filename: slot.filename(),
			Idiom:    "mac",
			Scale:    fmt.Sprintf("%dx", slot.Scale),
			Size:     fmt.Sprintf("%dx%d", slot.Size, slot.Size),
		})
	}
	doc := struct {
		Images []assetImage `json:"images"`
		Info   assetInfo    `json:"info"`
	}{images, assetInfo{Author: "xcode", Version: 1}}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(setDir, "Contents.json"), data, 0o644)
}

func writeCatalogContents(catalogDir string) error {
	doc := struct {
		Info assetInfo `json:"info"`
	}{assetInfo{Author: "xcode", Version: 1}}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(catalogDir, "Contents.json"), data, 0o644)
}
