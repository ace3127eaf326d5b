package hal

import "fx3d/render/geom"

// memFramebuffer is a tightly packed RGB565 buffer. present is nil on targets
// where the pixels are picked up by someone else (the ebiten Draw call).
type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	present func(buf []byte, w, h int) error
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	stride := w * 2
	return &memFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := geom.RGB(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.buf, f.w, f.h)
}

// toRGBA expands the RGB565 buffer into dst (RGBA, 4 bytes per pixel).
func (f *memFramebuffer) toRGBA(dst []byte) {
	src := f.buf
	for i, j := 0, 0; i+1 < len(src) && j+3 < len(dst); i, j = i+2, j+4 {
		r, g, b := (geom.Color(src[i]) | geom.Color(src[i+1])<<8).RGB888()
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
