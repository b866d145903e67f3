package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/f3rmion/fourzi/internal/fourzi"
	"github.com/f3rmion/fourzi/internal/pinyin"
)

// ErrNoFont is returned when none of the candidate font files can be used.
var ErrNoFont = errors.New("no usable CJK font found")

// DefaultFontPaths are common CJK font locations on macOS, Linux and Windows.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// onThreshold is the gray level above which a pixel counts as ink.
const onThreshold = 40

// BlockFont draws characters as half-block art (▀▄█).
type BlockFont struct {
	face  font.Face
	cache map[string]string
}

// LoadBlockFont returns a BlockFont from the first path that parses as a
// font or font collection.
func LoadBlockFont(paths ...string) (*BlockFont, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		face, err := parseFace(data)
		if err != nil {
			continue
		}
		return &BlockFont{face: face, cache: make(map[string]string)}, nil
	}
	return nil, ErrNoFont
}

func parseFace(data []byte) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, opts)
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return opentype.NewFace(fnt, opts)
}

// Block renders char in cols x rows terminal cells.
func (f *BlockFont) Block(char string, cols, rows int) string {
	if char == "" {
		return ""
	}

	key := blockKey(char, cols, rows)
	if cached, ok := f.cache[key]; ok {
		return cached
	}

	block := halfBlocks(scaleDown(f.rasterize(char), cols, rows*2), cols, rows)
	f.cache[key] = block
	return block
}

func blockKey(char string, cols, rows int) string {
	return fmt.Sprintf("%s/%d/%d", char, cols, rows)
}

// rasterize draws the first rune of char white on black, centred with a
// small margin.
func (f *BlockFont) rasterize(char string) *image.Gray {
	const padding = 4

	r, _ := utf8.DecodeRuneInString(char)
	bounds, _, _ := f.face.GlyphBounds(r)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	canvas := image.Rect(0, 0, max(glyphWidth+padding*2, 64), max(glyphHeight+padding*2, 64))
	img := image.NewGray(canvas)
	draw.Draw(img, canvas, image.Black, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P((canvas.Dx()-glyphWidth)/2, canvas.Dy()-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(r))
	return img
}

// scaleDown shrinks src to w x h. Each destination pixel is the mean of the
// source rectangle it covers.
func scaleDown(src *image.Gray, w, h int) *image.Gray {
	sb := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			area := image.Rect(
				sb.Min.X+x*sb.Dx()/w, sb.Min.Y+y*sb.Dy()/h,
				sb.Min.X+(x+1)*sb.Dx()/w, sb.Min.Y+(y+1)*sb.Dy()/h,
			)
			dst.SetGray(x, y, color.Gray{Y: mean(src, area)})
		}
	}
	return dst
}

func mean(img *image.Gray, area image.Rectangle) uint8 {
	area = area.Intersect(img.Bounds())
	if area.Empty() {
		return 0
	}

	sum := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			sum += int(img.GrayAt(x, y).Y)
		}
	}
	return uint8(sum / (area.Dx() * area.Dy()))
}

// halfBlockRunes is indexed by top<<1 | bottom.
var halfBlockRunes = [4]rune{' ', '▄', '▀', '█'}

// halfBlocks packs two vertical pixels into each terminal cell.
func halfBlocks(img *image.Gray, cols, rows int) string {
	lines := make([]string, rows)
	for row := range lines {
		cells := make([]rune, cols)
		for col := range cells {
			idx := 0
			if inked(img, col, row*2) {
				idx |= 2
			}
			if inked(img, col, row*2+1) {
				idx |= 1
			}
			cells[col] = halfBlockRunes[idx]
		}
		lines[row] = string(cells)
	}
	return strings.Join(lines, "\n")
}

// inked reports whether the pixel at (x, y) is bright enough to draw.
// Pixels outside img are blank.
func inked(img *image.Gray, x, y int) bool {
	if !image.Pt(x, y).In(img.Bounds()) {
		return false
	}
	return img.GrayAt(x, y).Y > onThreshold
}

// Big draws every cell as half-block art, one grid row per band. With an
// annotator the reading goes under each block.
type Big struct {
	font      *BlockFont
	annotator *pinyin.Annotator
	cols      int
	rows      int
}

// Render implements Renderer.
func (b *Big) Render(w io.Writer, grid fourzi.Grid) error {
	if grid.Rows() == 0 {
		_, err := fmt.Fprintln(w, GridStyle.Render("(empty grid)"))
		return err
	}

	bands := make([]string, 0, grid.Rows())
	for _, row := range grid {
		blocks := make([]string, len(row))
		for i, c := range row {
			blocks[i] = b.cell(c)
		}
		bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, bands...))
	return err
}

func (b *Big) cell(char string) string {
	block := BigCellStyle.Render(b.font.Block(char, b.cols, b.rows))
	if b.annotator == nil {
		return block
	}
	// The border adds one column on each side.
	reading := CellPinyinStyle.Width(b.cols + 2).Render(b.annotator.Reading(char))
	return lipgloss.JoinVertical(lipgloss.Center, block, reading)
}
