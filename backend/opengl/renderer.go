// Package opengl renders gui draw lists with OpenGL 4.1 and feeds GLFW window
// events to a host bridge.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/modkit"
)

// Renderer implements gui.Renderer.
type Renderer struct {
	program  uint32
	uniforms uniforms
	vao, vbo uint32
	ebo      uint32
	fontTex  uint32
	width    int
	height   int

	// textures uploaded as RGBA; everything else is sampled as coverage
	rgba map[uint32]bool
}

var _ gui.Renderer = (*Renderer)(nil)

// NewRenderer creates the GL resources. A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		rgba:   make(map[uint32]bool),
	}

	var err error
	if r.program, err = linkProgram(vertexShaderSource, fragmentShaderSource); err != nil {
		return nil, fmt.Errorf("gui shader: %w", err)
	}
	r.uniforms.locate(r.program)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(gui.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = uploadAtlas()
	return r, nil
}

// FontTextureID returns the glyph atlas texture.
func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// UploadIcon creates an RGBA texture from pix (width*height*4 bytes) for use
// with Painter.AddIcon.
func (r *Renderer) UploadIcon(width, height int, pix []byte) (uint32, error) {
	if len(pix) != width*height*4 {
		return 0, fmt.Errorf("icon: %d bytes for %dx%d", len(pix), width, height)
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.rgba[tex] = true
	return tex, nil
}

// DeleteIcon frees a texture created by UploadIcon.
func (r *Renderer) DeleteIcon(tex uint32) {
	if r.rgba[tex] {
		gl.DeleteTextures(1, &tex)
		delete(r.rgba, tex)
	}
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws dl on top of whatever the host has drawn, restoring the GL state
// it touched afterwards.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := orthoMatrix(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.uniforms.projection, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uniforms.tex, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorRect(cmd.ClipRect, r.width, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)
		r.bindTexture(cmd.TextureID)
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

func (r *Renderer) bindTexture(tex uint32) {
	if tex == 0 {
		gl.Uniform1i(r.uniforms.useTexture, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.uniforms.useTexture, 1)
	if r.rgba[tex] {
		gl.Uniform1i(r.uniforms.isRGBA, 1)
	} else {
		gl.Uniform1i(r.uniforms.isRGBA, 0)
	}
}

// Delete releases the GL resources.
func (r *Renderer) Delete() {
	for tex := range r.rgba {
		r.DeleteIcon(tex)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func uploadAtlas() uint32 {
	img := RasterizeAtlas()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, gui.AtlasWidth, gui.AtlasHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// scissorRect converts a top-left clip rectangle to GL's bottom-left scissor
// box, clamped to the framebuffer. ok is false when nothing is visible.
func scissorRect(clip [4]float32, width, height int) (x, y, w, h int32, ok bool) {
	fw, fh := float32(width), float32(height)
	x0, y0 := max(clip[0], 0), max(clip[1], 0)
	x1, y1 := min(clip[2], fw), min(clip[3], fh)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(fh - y1), int32(x1 - x0), int32(y1 - y0), true
}

type glState struct {
	program                       int32
	blendSrc, blendDst            int32
	scissor                       [4]int32
	blend, depth, cull, scissorOn bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissorOn = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCap(gl.BLEND, s.blend)
	setCap(gl.DEPTH_TEST, s.depth)
	setCap(gl.CULL_FACE, s.cull)
	setCap(gl.SCISSOR_TEST, s.scissorOn)
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}
