package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
)

var ErrNoFrames = errors.New("export: no frames to encode")

const (
	FrameWidth  = 480
	FrameHeight = 240

	frameDelay = 2   // 1/100 s
	lastDelay  = 150 // hold the sorted result
)

// palette index 0 is the background, 1+State the front colour of that state.
func framePalette(theme viz.Theme) color.Palette {
	p := color.Palette{color.RGBA{0x0a, 0x0a, 0x0a, 0xff}}
	for s := sorting.Normal; s <= sorting.Sorted; s++ {
		p = append(p, viz.RGBA(theme.FacesFor(s).Front))
	}
	return p
}

// Frame rasterises arr as vertical bars in the theme's state colours.
func Frame(arr sorting.Array, theme viz.Theme) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, FrameWidth, FrameHeight), framePalette(theme))
	if len(arr) == 0 {
		return img
	}

	barW := max(FrameWidth/len(arr), 1)
	gap := 0
	if barW >= 4 {
		gap = 1
	}
	for i, e := range arr {
		h := max(1, e.Value*FrameHeight/experiment.MaxValue)
		h = min(h, FrameHeight)
		x0 := i * barW
		if x0 >= FrameWidth {
			break
		}
		for y := FrameHeight - h; y < FrameHeight; y++ {
			for x := x0; x < min(x0+barW-gap, FrameWidth); x++ {
				img.SetColorIndex(x, y, uint8(1+e.State))
			}
		}
	}
	return img
}

// WriteGIF encodes frames as a looping animation. The last frame is held.
func WriteGIF(w io.Writer, frames []sorting.Array, theme viz.Theme) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for i, f := range frames {
		anim.Image = append(anim.Image, Frame(f, theme))
		delay := frameDelay
		if i == len(frames)-1 {
			delay = lastDelay
		}
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// StepFrames collects the snapshot of every step, led by the initial array.
func StepFrames(initial sorting.Array, steps []sorting.Step) []sorting.Array {
	frames := make([]sorting.Array, 0, len(steps)+1)
	frames = append(frames, initial.Clone())
	for _, s := range steps {
		frames = append(frames, s.Elements)
	}
	return frames
}
