package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawable_PremultipliedColorCache(t *testing.T) {
	d := NewDrawable(ModePoints, 0.1)
	d.Buf.Resize(2)
	d.Buf.Col[0] = ColorF{1, 0.5, 0}
	d.Buf.Col[1] = ColorF{0, 1, 1}

	cols := d.colors()
	require.Equal(t, 2, len(cols))
	assert.Equal(t, [4]float32{1, 0.5, 0, 1}, cols[0])

	// Halving the opacity premultiplies everything by 0.5.
	d.SetOpacity(0.5)
	cols = d.colors()
	assert.Equal(t, [4]float32{0.5, 0.25, 0, 0.5}, cols[0])
	assert.Equal(t, [4]float32{0, 0.5, 0.5, 0.5}, cols[1])
}

func TestDrawable_SetOpacityInvalidatesOnlyOnChange(t *testing.T) {
	d := NewDrawable(ModeLineStrip, 0.02)
	d.Buf.Resize(3)
	d.colors()
	require.False(t, d.dirty)

	d.SetOpacity(1) // already 1
	assert.False(t, d.dirty)

	d.SetOpacity(0.8)
	assert.True(t, d.dirty)
	d.colors()
	assert.False(t, d.dirty)

	// Explicit invalidation forces a rebuild even with unchanged opacity.
	d.Invalidate()
	assert.True(t, d.dirty)
}

func TestDrawable_CacheFollowsBufferResize(t *testing.T) {
	d := NewDrawable(ModePoints, 0.1)
	d.Buf.Resize(4)
	d.Buf.Fill(ColorF{1, 1, 1})
	assert.Equal(t, 4, len(d.colors()))

	// Growing the buffer without touching the opacity still yields a
	// matching color array.
	d.Buf.Resize(9)
	d.Buf.Fill(ColorF{1, 1, 1})
	assert.Equal(t, 9, len(d.colors()))
}

func TestGeometryBuffer_ResizeReusesBacking(t *testing.T) {
	var b GeometryBuffer
	b.Resize(100)
	p := &b.Pos[0]
	b.Resize(50)
	b.Resize(100)
	assert.Same(t, p, &b.Pos[0])
}
