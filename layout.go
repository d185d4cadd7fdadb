package gui

// Line is one line of a laid-out text block, as rune indices into the text.
type Line struct {
	Start  int // First rune consumed, including skipped leading whitespace
	Left   int // First rune drawn
	Right  int // One past the last rune drawn
	Width  int // Measured width in pixels, trailing bearing removed
	Spaces int // Spaces that take justification slack
}

// lineBreaker performs greedy word wrapping of one text block against a
// box width. All arithmetic is in integer pixels.
type lineBreaker struct {
	text  []rune
	fonts FontMetrics
	font  FontID
	size  int
	width int
}

// BreakLines wraps text to width and returns its lines in order.
//
// Lines break at the last space that fits; a word wider than the box is
// split between characters, and a character wider than the box gets a
// line of its own. Explicit newlines always end a line. Whitespace at the
// start of a line is skipped.
func BreakLines(fonts FontMetrics, font FontID, size int, text string, width int) []Line {
	lb := lineBreaker{text: []rune(text), fonts: fonts, font: font, size: size, width: width}

	var lines []Line
	for right := 0; right < len(lb.text); {
		line, ok := lb.next(right)
		if !ok {
			break
		}
		lines = append(lines, line)
		right = line.Right
	}
	return lines
}

// next returns the line starting at rune index right.
// ok is false when only whitespace is left.
func (lb *lineBreaker) next(right int) (line Line, ok bool) {
	text := lb.text
	n := len(text)

	start := right
	for right < n && isBreakSpace(text[right]) {
		right++
	}
	if right >= n {
		return Line{}, false
	}
	left := right

	width, prevWidth, spaces := 0, 0, 0
	for right < n && text[right] != '\n' && width <= lb.width {
		prevWidth = width
		width += lb.step(right)
		if text[right] == ' ' {
			spaces++
		}
		right++
	}

	// Overflow: back off to the last space, then drop the run of spaces
	// found there.
	mid := right
	if width > lb.width {
		for mid > left && text[mid-1] != ' ' {
			width -= lb.step(mid - 1)
			mid--
		}
		for mid > left && text[mid-1] == ' ' {
			width -= lb.step(mid - 1)
			spaces--
			mid--
		}
	}

	if mid == left {
		if left == right {
			width = lb.width
			right = left + 1
		} else {
			// No space to break at: split the word before the overflowing rune.
			width = prevWidth
			right--
		}
	} else {
		right = mid
	}
	if left == right {
		right++
	}

	// Measure ink, not advance, for the last glyph.
	if last := text[right-1]; last != ' ' {
		adv, _ := lb.fonts.CharAdvance(lb.font, lb.size, last)
		x1, _, x2, _ := lb.fonts.CharBBox(lb.font, lb.size, last)
		width -= adv - (x2 + x1)
	}

	return Line{Start: start, Left: left, Right: right, Width: width, Spaces: spaces}, true
}

// step returns the advance of rune i including kerning to the next rune.
func (lb *lineBreaker) step(i int) int {
	adv, _ := lb.fonts.CharAdvance(lb.font, lb.size, lb.text[i])
	return adv + lb.kern(i)
}

// kern returns the kerning between rune i and its successor, 0 at the end
// of the text.
func (lb *lineBreaker) kern(i int) int {
	var next rune
	if i+1 < len(lb.text) {
		next = lb.text[i+1]
	}
	return lb.fonts.Kerning(lb.font, lb.size, lb.text[i], next)
}

func isBreakSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// drawsGlyph reports whether r gets a glyph quad.
func drawsGlyph(r rune) bool {
	return r != ' ' && r != '\t' && r != '\n' && r != 0
}

// drawnRunes counts the runes of text that get a glyph quad.
func drawnRunes(text []rune) int {
	n := 0
	for _, r := range text {
		if drawsGlyph(r) {
			n++
		}
	}
	return n
}

// layoutText wraps the component's text into its box and appends one glyph
// quad per visible character to the frame's glyph buffer. Vertical
// alignment is applied afterwards by shifting the block's vertices.
func (b *Builder) layoutText(c *Component) error {
	if b.fonts == nil {
		return ErrNoFont
	}

	glyphs := b.frame.Glyphs
	lb := lineBreaker{text: []rune(c.Text), fonts: b.fonts, font: c.Font, size: c.FontSize, width: c.Box.W}
	if err := glyphs.Reserve(drawnRunes(lb.text)); err != nil {
		return err
	}
	first := glyphs.VertexCount()

	ascent, descent, lineGap := b.fonts.LineMetrics(c.Font, c.FontSize)
	lineHeight := ascent - descent + lineGap

	oy := ascent
	for right := 0; right < len(lb.text); {
		line, ok := lb.next(right)
		if !ok {
			break
		}
		if err := b.emitLine(c, &lb, line, oy); err != nil {
			return err
		}
		right = line.Right
		oy += lineHeight
	}

	if c.VAlign == AlignTop {
		return nil
	}

	height := oy - lineHeight
	shift := float32(int(c.VAlign)*(c.Box.H-height)) / 2
	dy := b.screen.PixelToScreenY(shift)
	for i := first; i < len(glyphs.Vertices); i++ {
		glyphs.Vertices[i].Pos[1] -= dy
	}
	return nil
}

// emitLine emits the glyphs of one line with its baseline oy pixels below
// the top of the box.
func (b *Builder) emitLine(c *Component, lb *lineBreaker, line Line, oy int) error {
	box := c.Box
	text := lb.text

	ha := c.HAlign
	justify := false
	if ha == AlignJustify {
		ha = AlignLeft
		justify = true
	}
	slack := 0
	if justify {
		if line.Spaces > 0 {
			slack = (box.W - line.Width) / line.Spaces
		} else if verbose() {
			b.logger.Debug("justify: no spaces on line, laying out left",
				"component", c.id, "left", line.Left, "right", line.Right)
		}
	}

	ox := int(float32(ha) * float32(box.W-line.Width) / 2)
	for i := line.Left; i < line.Right; i++ {
		ch := text[i]
		adv, lsb := b.fonts.CharAdvance(c.Font, c.FontSize, ch)

		if drawsGlyph(ch) {
			x1, y1, x2, y2 := b.fonts.CharBBox(c.Font, c.FontSize, ch)
			uv := b.fonts.CharBitmapRect(c.Font, c.FontSize, ch)

			x := box.X + ox + lsb
			y := box.Y + box.H - oy - y2
			corners := b.screen.PixelRectToScreen(x, y, x2-x1, y2-y1)
			if err := EmitQuad(b.frame.Glyphs, corners, uv, c.TextColor, TexBitmap); err != nil {
				return err
			}
		}

		ox += adv + lb.kern(i)
		if ch == ' ' {
			ox += slack
		}
	}
	return nil
}
