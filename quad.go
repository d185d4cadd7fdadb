package gui

// EmitQuad appends one axis-aligned quad to buf: 4 vertices in the order
// top-left, bottom-left, bottom-right, top-right and the two triangles
// (0,1,2) and (0,2,3) relative to the quad's first vertex.
//
// Flat-colour quads (TexColor) ignore uv and always span the whole fallback
// texture. The buffer grows by one quad if it is full.
func EmitQuad(buf *QuadBuffer, c Corners, uv UVRect, color Color, mode TextureMode) error {
	if buf.Len() >= buf.Cap() {
		if err := buf.Reserve(1); err != nil {
			return err
		}
	}

	if mode == TexColor {
		uv = FullUV
	}
	rgba := color.Floats()
	m := float32(mode)

	base := uint32(len(buf.Vertices))
	buf.Vertices = append(buf.Vertices,
		Vertex{Pos: [2]float32{c.X1, c.Y1}, UV: [2]float32{uv.U1, uv.V2}, Color: rgba, Mode: m},
		Vertex{Pos: [2]float32{c.X1, c.Y2}, UV: [2]float32{uv.U1, uv.V1}, Color: rgba, Mode: m},
		Vertex{Pos: [2]float32{c.X2, c.Y2}, UV: [2]float32{uv.U2, uv.V1}, Color: rgba, Mode: m},
		Vertex{Pos: [2]float32{c.X2, c.Y1}, UV: [2]float32{uv.U2, uv.V2}, Color: rgba, Mode: m},
	)
	buf.Indices = append(buf.Indices, base, base+1, base+2, base, base+2, base+3)
	return nil
}
