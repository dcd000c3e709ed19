package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
)

// Common paper widths in characters.
const (
	Width58mm = 32
	Width80mm = 48
)

// Document builds a receipt as an ESC/POS byte stream for thermal printers.
// A plain document emits the same layout without control codes so it can be
// saved as a text file or shown in a terminal.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters
	plain bool
	align int
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	d := &Document{width: normalizeWidth(charWidth)}
	d.Init()
	return d
}

// NewPlainDocument creates a document that renders text only.
func NewPlainDocument(charWidth int) *Document {
	return &Document{width: normalizeWidth(charWidth), plain: true}
}

func normalizeWidth(w int) int {
	if w <= 0 {
		return Width58mm
	}
	return w
}

// Width returns the line width in characters.
func (d *Document) Width() int {
	return d.width
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.command(ESC, '@')
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
// Plain documents pad centered and right aligned lines with spaces instead.
func (d *Document) SetAlign(align int) *Document {
	d.align = align
	d.command(ESC, 'a', byte(align))
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.command(ESC, 'E', b)
	return d
}

// SetFontSize sets the character size. Use FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.command(GS, '!', size)
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	if d.plain {
		s = d.pad(s)
	}
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char rune) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
func (d *Document) KeyValue(key, value string) *Document {
	d.columns(key, value)
	return d
}

// ItemLine prints "2x Widget      50.00". Names too long for the line are cut
// so the amount column stays aligned.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx ", qty)
	room := d.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(total) - 1
	d.columns(prefix+truncate(name, room), total)
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.command(GS, 'V', 0x01)
	return d
}

// Bytes returns the accumulated byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func (d *Document) command(b ...byte) {
	if d.plain {
		return
	}
	d.buf.Write(b)
}

func (d *Document) columns(left, right string) {
	spaces := d.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(right)
	d.buf.WriteByte(LF)
}

func (d *Document) pad(s string) string {
	gap := d.width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	switch d.align {
	case AlignCenter:
		return strings.Repeat(" ", gap/2) + s
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	default:
		return s
	}
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "~"
}
