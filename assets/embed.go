package assets

import (
	"bytes"
	"embed"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Dir is checked for "<frame>.png" before falling back to embedded files and
// then to generated placeholders.
var Dir = "assets"

//go:embed *
var assetsFS embed.FS

// Sprites caches one image per frame reference and size.
type Sprites struct {
	cache  map[string]*ebiten.Image
	warned map[string]bool
	debug  bool
}

// NewSprites creates an empty cache. With debug set, every frame that falls
// back to a placeholder is logged once.
func NewSprites(debug bool) *Sprites {
	return &Sprites{
		cache:  make(map[string]*ebiten.Image),
		warned: make(map[string]bool),
		debug:  debug,
	}
}

// Frame returns the image for a frame reference such as "chicken/walk/2".
func (s *Sprites) Frame(key string, w, h int) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	id := key + "@" + strconv.Itoa(w) + "x" + strconv.Itoa(h)
	if img, ok := s.cache[id]; ok {
		return img
	}

	img, err := LoadImage(key + ".png")
	if err != nil {
		if s.debug && !s.warned[key] {
			s.warned[key] = true
			log.Printf("assets: placeholder for %s: %v", key, err)
		}
		img = placeholder(key, w, h)
	}
	s.cache[id] = img
	return img
}

// LoadImage loads a PNG from Dir, or from the embedded files when no disk
// copy exists.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	b, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err != nil {
		b, err = assetsFS.ReadFile(clean)
		if err != nil {
			return nil, err
		}
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func placeholder(key string, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	if strings.HasPrefix(key, "statusbar/") {
		drawBar(img, key, w, h)
		return img
	}
	img.Fill(Palette(key))
	return img
}

// drawBar fills a share of the bar proportional to the frame index (1..6).
func drawBar(img *ebiten.Image, key string, w, h int) {
	img.Fill(colornames.Dimgray)
	n, err := strconv.Atoi(key[strings.LastIndex(key, "/")+1:])
	if err != nil || n <= 1 {
		return
	}
	fillW := w * (n - 1) / 5
	inner := img.SubImage(image.Rect(0, h/4, fillW, h*3/4)).(*ebiten.Image)
	inner.Fill(Palette(key))
}

var palette = []struct {
	prefix string
	col    color.RGBA
}{
	{"character/dead", colornames.Darkslategray},
	{"character/hurt", colornames.Indianred},
	{"character", colornames.Sandybrown},
	{"mini_chicken/dead", colornames.Rosybrown},
	{"mini_chicken", colornames.Peru},
	{"chicken/dead", colornames.Rosybrown},
	{"chicken", colornames.Saddlebrown},
	{"endboss/hurt", colornames.Orangered},
	{"endboss/dead", colornames.Dimgray},
	{"endboss", colornames.Firebrick},
	{"coin", colornames.Gold},
	{"bottle/splash", colornames.Tomato},
	{"bottle", colornames.Seagreen},
	{"background/air", colornames.Skyblue},
	{"background/third_layer", colornames.Palegoldenrod},
	{"background/second_layer", colornames.Darkkhaki},
	{"background/first_layer", colornames.Olivedrab},
	{"background/clouds", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}},
	{"statusbar/health", colornames.Limegreen},
	{"statusbar/bottle", colornames.Seagreen},
	{"statusbar/coin", colornames.Gold},
	{"statusbar/boss", colornames.Royalblue},
}

// Palette returns the placeholder colour for a frame reference. Unknown
// frames are magenta.
func Palette(key string) color.RGBA {
	for _, p := range palette {
		if strings.HasPrefix(key, p.prefix) {
			return p.col
		}
	}
	return colornames.Magenta
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
