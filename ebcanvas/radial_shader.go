//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Center vec2
var Radius float

// colors are premultiplied, unused stops repeat the last one
var Offsets [4]float
var Colors [4]vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	t := 1.0
	if Radius > 0 {
		t = clamp(distance(dstPos.xy, Center)/Radius, 0, 1)
	}

	c := Colors[0]
	for i := 0; i < 3; i++ {
		if t > Offsets[i] {
			span := max(Offsets[i+1]-Offsets[i], 0.00001)
			c = mix(Colors[i], Colors[i+1], clamp((t-Offsets[i])/span, 0, 1))
		}
	}

	return c
}
