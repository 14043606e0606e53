package svg

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	out := Escape(`<script>&"'`)

	stripped := out
	for _, entity := range []string{"&lt;", "&gt;", "&amp;", "&#34;", "&#39;"} {
		stripped = strings.ReplaceAll(stripped, entity, "")
	}

	assert.NotContains(t, stripped, "<")
	assert.NotContains(t, stripped, ">")
	assert.NotContains(t, stripped, "&")
	assert.NotContains(t, stripped, `"`)
	assert.NotContains(t, stripped, "'")
	assert.Equal(t, "&lt;script&gt;&amp;&#34;&#39;", out)
}

func TestNode_String(t *testing.T) {
	t.Run("Self closing without content", func(t *testing.T) {
		n := Rect(A("x", 1), A("fill", "#fff"))
		assert.Equal(t, `<rect x="1" fill="#fff"/>`, n.String())
	})

	t.Run("Nested children", func(t *testing.T) {
		n := Rect(A("stroke-width", 1.5)).Append(Title("hi"))
		assert.Equal(t, `<rect stroke-width="1.5"><title>hi</title></rect>`, n.String())
	})

	t.Run("Text and attributes are escaped", func(t *testing.T) {
		n := Text(`a<b & "c"`, A("data-x", `"><script>`))
		out := n.String()

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "a&lt;b &amp; &#34;c&#34;")
	})
}

func TestNode_Find(t *testing.T) {
	root := Element("g").Append(
		Rect(A("id", "a")),
		Element("g").Append(Rect(A("id", "b"))),
		Text("t"),
	)

	rects := root.Find("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, "a", rects[0].Attr("id"))
	assert.Equal(t, "b", rects[1].Attr("id"))
	assert.Equal(t, "", rects[1].Attr("missing"))
}

func TestDocument_IsWellFormed(t *testing.T) {
	doc := Document(120, 40,
		Rect(A("width", 120), A("height", 40)),
		Text(`Tom & "Jerry" <3`, A("x", 4)),
	)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<svg xmlns="http://www.w3.org/2000/svg" width="120" height="40" viewBox="0 0 120 40">`)
	assert.True(t, strings.HasSuffix(doc, "</svg>"))

	var parsed struct {
		XMLName xml.Name `xml:"svg"`
		Width   int      `xml:"width,attr"`
		Text    string   `xml:"text"`
	}
	require.NoError(t, xml.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, 120, parsed.Width)
	assert.Equal(t, `Tom & "Jerry" <3`, parsed.Text)
}
