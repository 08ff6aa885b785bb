package layout_test

import (
	"errors"
	"testing"

	"github.com/pawndev/vkbd/pkg/vkbd/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundled(t *testing.T) {
	table, err := layout.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "ru"}, table.Languages())
	assert.Len(t, table.Codes(), 64)

	for _, lang := range table.Languages() {
		total := 0
		for r := 0; r < layout.RowCount; r++ {
			total += len(table.Row(lang, r))
		}
		assert.Equal(t, 64, total, lang)
	}
}

func TestLookup(t *testing.T) {
	table := layout.MustLoad()

	def, ok := table.Lookup("en", 2, "KeyA")
	require.True(t, ok)
	assert.Equal(t, [4]string{"a", "A", "A", "a"}, def.Glyphs)
	assert.Equal(t, layout.KindLetter, def.Kind)

	def, ok = table.Lookup("ru", 2, "KeyA")
	require.True(t, ok)
	assert.Equal(t, "ф", def.Glyphs[0])

	def, ok = table.Lookup("ru", 3, "Comma")
	require.True(t, ok)
	assert.Equal(t, [4]string{"б", "Б", "Б", "б"}, def.Glyphs)

	def, ok = table.Lookup("en", 0, "Backspace")
	require.True(t, ok)
	assert.Equal(t, layout.KindSpecial, def.Kind)
	assert.Equal(t, "key--backspace", def.Class)

	_, ok = table.Lookup("en", 0, "KeyA")
	assert.False(t, ok, "key exists but in another row")

	_, ok = table.Lookup("de", 2, "KeyA")
	assert.False(t, ok)

	_, ok = table.Lookup("en", 2, "F1")
	assert.False(t, ok)
}

func TestNamedShiftPositions(t *testing.T) {
	table := layout.MustLoad()
	codes := table.Codes()

	assert.Equal(t, "ShiftLeft", codes[42])
	assert.Equal(t, "ShiftRight", codes[54])
}

func TestClassify(t *testing.T) {
	cases := map[string]layout.Kind{
		"KeyQ":       layout.KindLetter,
		"Comma":      layout.KindLetter,
		"Backquote":  layout.KindLetter,
		"Digit1":     layout.KindSymbol,
		"Slash":      layout.KindSymbol,
		"Space":      layout.KindSymbol,
		"ShiftLeft":  layout.KindSpecial,
		"MetaLeft":   layout.KindSpecial,
		"ArrowRight": layout.KindSpecial,
	}
	for code, want := range cases {
		assert.Equal(t, want, layout.Classify(code), code)
	}
}

func TestNext(t *testing.T) {
	table := layout.MustLoad()

	assert.Equal(t, "ru", table.Next("en"))
	assert.Equal(t, "en", table.Next("ru"))
	assert.Equal(t, "en", table.Next("xx"))
}

const validRows = `
[[rows]]
keys = [{ code = "KeyA", glyphs = ["a", "A", "A", "a"] }]
[[rows]]
keys = [{ code = "Digit1", glyphs = ["1", "!", "1", "!"] }]
[[rows]]
keys = []
[[rows]]
keys = []
[[rows]]
keys = [{ code = "Space", glyphs = [" ", " ", " ", " "] }]
`

func TestParseRejectsMissingKey(t *testing.T) {
	other := `
[[rows]]
keys = [{ code = "KeyA", glyphs = ["ф", "Ф", "Ф", "ф"] }]
[[rows]]
keys = []
[[rows]]
keys = []
[[rows]]
keys = []
[[rows]]
keys = [{ code = "Space", glyphs = [" ", " ", " ", " "] }]
`
	_, err := layout.Parse(map[string][]byte{
		"en": []byte(validRows),
		"ru": []byte(other),
	}, []string{"en", "ru"})

	var verr *layout.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "ru: row 1 is missing key Digit1")
}

func TestParseRejectsBadShape(t *testing.T) {
	t.Run("row count", func(t *testing.T) {
		_, err := layout.Parse(map[string][]byte{
			"en": []byte("[[rows]]\nkeys = []\n"),
		}, []string{"en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 5 rows, got 1")
	})

	t.Run("glyph count", func(t *testing.T) {
		src := `
[[rows]]
keys = [{ code = "KeyA", glyphs = ["a", "A"] }]
[[rows]]
keys = []
[[rows]]
keys = []
[[rows]]
keys = []
[[rows]]
keys = []
`
		_, err := layout.Parse(map[string][]byte{"en": []byte(src)}, []string{"en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key KeyA has 2 glyphs, want 4")
	})

	t.Run("missing language data", func(t *testing.T) {
		_, err := layout.Parse(map[string][]byte{"en": []byte(validRows)}, []string{"en", "ru"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ru: no layout data")
	})

	t.Run("duplicate key", func(t *testing.T) {
		src := `
[[rows]]
keys = [{ code = "KeyA", glyphs = ["a", "A", "A", "a"] }]
[[rows]]
keys = [{ code = "KeyA", glyphs = ["a", "A", "A", "a"] }]
[[rows]]
keys = []
[[rows]]
keys = []
[[rows]]
keys = []
`
		_, err := layout.Parse(map[string][]byte{"en": []byte(src)}, []string{"en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key KeyA defined twice")
	})
}

func TestParseSingleLanguage(t *testing.T) {
	table, err := layout.Parse(map[string][]byte{"en": []byte(validRows)}, []string{"en"})
	require.NoError(t, err)

	assert.True(t, table.Has("Digit1"))
	assert.False(t, table.Has("KeyB"))

	def, row, ok := table.Find("en", "Space")
	require.True(t, ok)
	assert.Equal(t, 4, row)
	assert.Equal(t, "key--space", def.Class)
}
