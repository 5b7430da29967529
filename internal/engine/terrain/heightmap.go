package terrain

import (
	"image"
	"image/color"

	"github.com/Faultbox/skyfountain/pkg/math"
)

// SampleImage reads one height per pixel from the unpremultiplied red channel
// of img, normalized to [0,1]. Row 0 is the top row of the image.
func SampleImage(img image.Image) *Heightmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	heights := make([]float32, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+col, bounds.Min.Y+row)).(color.NRGBA)
			heights[row*width+col] = float32(c.R) / 255
		}
	}

	return &Heightmap{
		Width:   width,
		Height:  height,
		Heights: heights,
	}
}

// At returns the sample at (row, col). Coordinates outside the grid are
// clamped onto the nearest edge sample.
func (hm *Heightmap) At(row, col int) float32 {
	row = clamp(row, 0, hm.Height-1)
	col = clamp(col, 0, hm.Width-1)
	return hm.Heights[row*hm.Width+col]
}

// Point returns the mesh-local position of grid cell (row, col) after clamping.
// The mesh spans [-0.5, 0.5] on X and Z, centred on the origin.
func (hm *Heightmap) Point(row, col int) math.Vec3 {
	row = clamp(row, 0, hm.Height-1)
	col = clamp(col, 0, hm.Width-1)
	return math.Vec3{
		X: float32(col)/float32(hm.Width-1) - 0.5,
		Y: hm.Heights[row*hm.Width+col],
		Z: float32(row)/float32(hm.Height-1) - 0.5,
	}
}

// Normal returns the surface normal at (row, col) from its four axis neighbours.
// Neighbours off the grid reuse the boundary sample. A flat degenerate
// neighbourhood has no defined normal and yields NaN.
func (hm *Heightmap) Normal(row, col int) math.Vec3 {
	top := hm.Point(row-1, col)
	bottom := hm.Point(row+1, col)
	left := hm.Point(row, col-1)
	right := hm.Point(row, col+1)

	rightToLeft := math.VectorBetween(right, left)
	topToBottom := math.VectorBetween(top, bottom)
	return rightToLeft.Cross(topToBottom).Normalize()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
