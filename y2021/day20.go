package y2021

import (
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
)

// Day20 is "Trench Map": iterated image enhancement on an infinite canvas.
type Day20 struct{}

// image is the finite lit region plus the state of every pixel beyond it.
type image struct {
	px         *grid.Grid[bool]
	background bool
}

func parseTrench(in string) ([512]bool, image, error) {
	var alg [512]bool
	blocks := input.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 || len(blocks[0][0]) != len(alg) {
		return alg, image{}, puzzle.Malformedf("expected a 512-character algorithm and an image")
	}
	for i, r := range blocks[0][0] {
		alg[i] = r == '#'
	}

	var text string
	for i, l := range blocks[1] {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	px, err := grid.Parse(text, func(r rune) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.':
			return false, nil
		}
		return false, puzzle.Malformedf("pixel %q", r)
	})
	if err != nil {
		return alg, image{}, puzzle.Malformedf("image: %v", err)
	}

	return alg, image{px: px}, nil
}

// at reads a pixel of the infinite image.
func (im image) at(p grid.Point) bool {
	if v, ok := im.px.Get(p); ok {
		return v
	}

	return im.background
}

// enhance grows the image by one pixel on every side. Each output pixel is
// looked up by the 9-bit number its 3×3 neighborhood spells, row-major.
// The infinite background flips whenever alg[0] lights dark space.
func (im image) enhance(alg *[512]bool) image {
	out := grid.New(im.px.Width+2, im.px.Height+2, false)
	for _, p := range out.Points() {
		c := p.Sub(grid.Pt(1, 1))
		idx := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				idx <<= 1
				if im.at(c.Add(grid.Pt(dx, dy))) {
					idx |= 1
				}
			}
		}
		out.Set(p, alg[idx])
	}

	bg := alg[0]
	if im.background {
		bg = alg[511]
	}

	return image{px: out, background: bg}
}

func lit(in string, steps int) (string, error) {
	alg, im, err := parseTrench(in)
	if err != nil {
		return "", err
	}
	for i := 0; i < steps; i++ {
		im = im.enhance(&alg)
	}
	if im.background {
		return "", puzzle.Malformedf("infinitely many pixels lit after %d steps", steps)
	}

	return strconv.Itoa(im.px.Count(func(v bool) bool { return v })), nil
}

// Part1 counts lit pixels after two enhancements.
func (Day20) Part1(in string) (string, error) { return lit(in, 2) }

// Part2 counts lit pixels after fifty enhancements.
func (Day20) Part2(in string) (string, error) { return lit(in, 50) }
