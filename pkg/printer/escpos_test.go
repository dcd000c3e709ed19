package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainDocument_HasNoControlCodes(t *testing.T) {
	doc := NewPlainDocument(20).
		SetAlign(AlignCenter).
		SetBold(true).
		SetFontSize(FontDouble).
		Text("SHOP").
		SetAlign(AlignLeft).
		Separator('=').
		PartialCut()

	out := string(doc.Bytes())
	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\x1d")
	assert.Equal(t, "        SHOP\n"+strings.Repeat("=", 20)+"\n", out)
}

func TestDocument_EmitsCommands(t *testing.T) {
	doc := NewDocument(Width58mm).SetBold(true).Text("x").PartialCut()
	out := doc.Bytes()

	assert.Equal(t, []byte{ESC, '@'}, out[:2])
	assert.Contains(t, string(out), string([]byte{ESC, 'E', 1}))
	assert.Equal(t, []byte{GS, 'V', 0x01}, out[len(out)-3:])
}

func TestKeyValue_AlignsToWidth(t *testing.T) {
	out := string(NewPlainDocument(20).KeyValue("TOTAL:", "12.50").Bytes())
	assert.Equal(t, "TOTAL:         12.50\n", out)
}

func TestItemLine_TruncatesLongNames(t *testing.T) {
	out := string(NewPlainDocument(20).ItemLine(2, "Extraordinarily long name", "5.00").Bytes())

	line := strings.TrimSuffix(out, "\n")
	assert.Equal(t, 20, len([]rune(line)))
	assert.True(t, strings.HasPrefix(line, "2x "))
	assert.True(t, strings.HasSuffix(line, " 5.00"))
	assert.Contains(t, line, "~")
}

func TestItemLine_CountsRunes(t *testing.T) {
	out := string(NewPlainDocument(16).ItemLine(1, "Pão", "1.00").Bytes())
	assert.Equal(t, "1x Pão      1.00\n", out)
}

func TestNormalizeWidth(t *testing.T) {
	assert.Equal(t, Width58mm, NewPlainDocument(0).Width())
	assert.Equal(t, Width80mm, NewPlainDocument(Width80mm).Width())
}
