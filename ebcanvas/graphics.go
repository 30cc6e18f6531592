package ebcanvas

import (
	eb "github.com/hajimehoshi/ebiten/v2"

	"backdrop"
)

type DrawTrianglesOptions struct {
	ColorScaleMode eb.ColorScaleMode

	FillRule eb.FillRule
}

type DrawTrianglesShaderOptions struct {
	Uniforms map[string]any

	FillRule eb.FillRule
}

func ToEbBlend(mode backdrop.BlendMode) eb.Blend {
	switch mode {
	case backdrop.BlendAdditive:
		return eb.BlendLighter
	default:
		return eb.BlendSourceOver
	}
}

func (c *Canvas) PushBlend(mode backdrop.BlendMode) {
	c.BlendStack = append(c.BlendStack, ToEbBlend(mode))
}

func (c *Canvas) PopBlend() {
	if len(c.BlendStack) <= 1 {
		return
	}
	c.BlendStack = c.BlendStack[0 : len(c.BlendStack)-1]
}

func (c *Canvas) CurrentBlend() eb.Blend {
	return c.BlendStack[len(c.BlendStack)-1]
}

func (c *Canvas) DrawTriangles(
	vertices []eb.Vertex, indices []uint16,
	img *eb.Image,
	options *DrawTrianglesOptions,
) {
	if c.Target == nil {
		return
	}
	if options == nil {
		options = &DrawTrianglesOptions{}
	}
	op := &eb.DrawTrianglesOptions{}
	op.ColorScaleMode = options.ColorScaleMode
	op.Blend = c.CurrentBlend()
	op.FillRule = options.FillRule
	op.AntiAlias = c.AntiAlias

	c.Target.DrawTriangles(vertices, indices, img, op)
}

func (c *Canvas) DrawTrianglesShader(
	vertices []eb.Vertex, indices []uint16,
	shader *eb.Shader,
	options *DrawTrianglesShaderOptions,
) {
	if c.Target == nil {
		return
	}
	if options == nil {
		options = &DrawTrianglesShaderOptions{}
	}
	op := &eb.DrawTrianglesShaderOptions{}
	op.Blend = c.CurrentBlend()
	op.Uniforms = options.Uniforms
	op.FillRule = options.FillRule
	op.AntiAlias = c.AntiAlias

	c.Target.DrawTrianglesShader(vertices, indices, shader, op)
}
