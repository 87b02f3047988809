package depth_test

import (
	"image"
	"image/color"
	"lintang/pathplanner/pkg/depth"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, G: 40, B: 10, A: 255}
			if (x/8+y/8)%2 == 0 {
				c = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEstimate(t *testing.T) {
	t.Run("output keeps size and is smoother than input", func(t *testing.T) {
		src := checkerboard(64, 48)
		out := depth.Estimate(src)
		assert.Equal(t, src.Bounds(), out.Bounds())

		// pixel hitam di tengah kotak hitam jadi lebih terang setelah blur
		assert.Greater(t, out.GrayAt(4, 4).Y, uint8(0))
	})
}

func TestProcessDir(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "depth")

	require.NoError(t, imaging.Save(checkerboard(32, 32), filepath.Join(in, "a.jpg")))
	require.NoError(t, imaging.Save(checkerboard(32, 32), filepath.Join(in, "b.png")))
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.jpeg"), []byte("not an image"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("ignored"), 0o644))

	var mu sync.Mutex
	seen := []string{}
	written, err := depth.ProcessDir(in, out, 2, func(path string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, path)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(out, "a.jpg"), filepath.Join(out, "b.png")}, written)
	assert.ElementsMatch(t, written, seen)
	for _, p := range written {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(out, "broken.jpeg"))
	assert.True(t, os.IsNotExist(err))
}
