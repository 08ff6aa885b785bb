// Package layout holds the static key tables of the on-screen keyboard.
//
// A Table maps a language code to five ordered rows of key definitions. Every
// language lists the same key codes in the same order; only the glyphs differ.
// Tables are validated once when loaded and never mutated afterwards.
package layout

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// RowCount is the number of rows every language defines.
const RowCount = 5

// VariantCount is the number of glyph variants every key carries.
const VariantCount = 4

// DefaultLanguage is used when no preference has been stored.
const DefaultLanguage = "en"

//go:embed data/*.toml
var bundled embed.FS

// BundledLanguages lists the embedded tables in toggle order.
var BundledLanguages = []string{"en", "ru"}

// Kind classifies a key for case resolution and text insertion.
type Kind int

const (
	// KindSymbol keys insert a glyph but have no distinct caps lock + shift form.
	KindSymbol Kind = iota
	// KindLetter keys insert a glyph and define all four case variants.
	KindLetter
	// KindSpecial keys are control keys and never insert their label.
	KindSpecial
)

func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "letter"
	case KindSpecial:
		return "special"
	default:
		return "symbol"
	}
}

// letterPunctuation carries letters in the Russian layout, so these keys
// resolve caps lock + shift like alphabetic keys.
var letterPunctuation = map[string]bool{
	"Backquote":    true,
	"BracketLeft":  true,
	"BracketRight": true,
	"Semicolon":    true,
	"Quote":        true,
	"Comma":        true,
	"Period":       true,
}

var specialKeys = map[string]bool{
	"Backspace":    true,
	"Tab":          true,
	"CapsLock":     true,
	"Enter":        true,
	"ShiftLeft":    true,
	"ShiftRight":   true,
	"Delete":       true,
	"ArrowUp":      true,
	"ArrowLeft":    true,
	"ArrowRight":   true,
	"ArrowDown":    true,
	"ControlLeft":  true,
	"ControlRight": true,
	"AltLeft":      true,
	"AltRight":     true,
	"MetaLeft":     true,
}

var specialClasses = map[string]string{
	"Backspace":  "key--backspace",
	"Tab":        "key--tab",
	"CapsLock":   "key--caps-lock",
	"Enter":      "key--enter",
	"ShiftLeft":  "key--shift-left",
	"ShiftRight": "key--shift-right",
	"Space":      "key--space",
	"AltLeft":    "key--alt-left",
	"AltRight":   "key--alt-right",
}

// Classify returns the kind of the key with the given code.
func Classify(code string) Kind {
	switch {
	case specialKeys[code]:
		return KindSpecial
	case strings.HasPrefix(code, "Key"), letterPunctuation[code]:
		return KindLetter
	default:
		return KindSymbol
	}
}

// SpecialClass returns the extra rendering class of a key, or "".
func SpecialClass(code string) string {
	return specialClasses[code]
}

// KeyDefinition describes one physical key.
type KeyDefinition struct {
	Code   string
	Glyphs [VariantCount]string
	Kind   Kind
	Class  string
}

// Table is an immutable set of per-language key rows.
type Table struct {
	order []string
	names map[string]string
	rows  map[string][RowCount][]KeyDefinition
	index map[string]map[string]keyPosition
}

type keyPosition struct {
	row int
	col int
}

type fileKey struct {
	Code   string   `toml:"code"`
	Glyphs []string `toml:"glyphs"`
}

type fileRow struct {
	Keys []fileKey `toml:"keys"`
}

type file struct {
	Language string    `toml:"language"`
	Name     string    `toml:"name"`
	Rows     []fileRow `toml:"rows"`
}

// Load parses and validates the bundled tables.
func Load() (*Table, error) {
	files := make(map[string][]byte, len(BundledLanguages))
	for _, lang := range BundledLanguages {
		data, err := bundled.ReadFile("data/" + lang + ".toml")
		if err != nil {
			return nil, fmt.Errorf("failed to read bundled layout %q: %w", lang, err)
		}
		files[lang] = data
	}
	return Parse(files, BundledLanguages)
}

// MustLoad is like Load but panics on error.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// Parse builds a Table from TOML sources keyed by language code. The order
// slice fixes the language toggle order and must name every source.
func Parse(files map[string][]byte, order []string) (*Table, error) {
	if len(order) == 0 {
		return nil, errors.New("layout: no languages given")
	}

	v := &ValidationError{}
	raw := make(map[string]file, len(order))

	for _, lang := range order {
		data, ok := files[lang]
		if !ok {
			v.add("%s: no layout data", lang)
			continue
		}
		var f file
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse layout %q: %w", lang, err)
		}
		if f.Language != "" && f.Language != lang {
			v.add("%s: file declares language %q", lang, f.Language)
		}
		raw[lang] = f
	}
	if len(files) != len(order) {
		for lang := range files {
			if !contains(order, lang) {
				v.add("%s: layout data given but language not ordered", lang)
			}
		}
	}
	if v.HasIssues() {
		return nil, v
	}

	t := &Table{
		order: append([]string(nil), order...),
		names: make(map[string]string, len(order)),
		rows:  make(map[string][RowCount][]KeyDefinition, len(order)),
		index: make(map[string]map[string]keyPosition, len(order)),
	}

	for _, lang := range order {
		f := raw[lang]
		t.names[lang] = f.Name
		if len(f.Rows) != RowCount {
			v.add("%s: expected %d rows, got %d", lang, RowCount, len(f.Rows))
			continue
		}

		var rows [RowCount][]KeyDefinition
		idx := make(map[string]keyPosition)
		for r, row := range f.Rows {
			for c, k := range row.Keys {
				if k.Code == "" {
					v.add("%s: row %d key %d has no code", lang, r, c)
					continue
				}
				if prev, dup := idx[k.Code]; dup {
					v.add("%s: key %s defined twice (rows %d and %d)", lang, k.Code, prev.row, r)
					continue
				}
				def, err := newKeyDefinition(k)
				if err != nil {
					v.add("%s: row %d: %v", lang, r, err)
					continue
				}
				idx[k.Code] = keyPosition{row: r, col: len(rows[r])}
				rows[r] = append(rows[r], def)
			}
		}
		t.rows[lang] = rows
		t.index[lang] = idx
	}

	if !v.HasIssues() {
		t.checkCompleteness(v)
	}
	if v.HasIssues() {
		return nil, v
	}
	return t, nil
}

func newKeyDefinition(k fileKey) (KeyDefinition, error) {
	if len(k.Glyphs) != VariantCount {
		return KeyDefinition{}, fmt.Errorf("key %s has %d glyphs, want %d", k.Code, len(k.Glyphs), VariantCount)
	}
	def := KeyDefinition{
		Code:  k.Code,
		Kind:  Classify(k.Code),
		Class: SpecialClass(k.Code),
	}
	for i, g := range k.Glyphs {
		if g == "" {
			return KeyDefinition{}, fmt.Errorf("key %s has an empty glyph at variant %d", k.Code, i)
		}
		def.Glyphs[i] = g
	}
	return def, nil
}

// checkCompleteness verifies every language lists the same codes in the same
// rows and order as the first language.
func (t *Table) checkCompleteness(v *ValidationError) {
	ref := t.order[0]
	refRows := t.rows[ref]
	for _, lang := range t.order[1:] {
		rows := t.rows[lang]
		for r := 0; r < RowCount; r++ {
			want, got := codes(refRows[r]), codes(rows[r])
			for _, c := range want {
				if !contains(got, c) {
					v.add("%s: row %d is missing key %s (present in %s)", lang, r, c, ref)
				}
			}
			for _, c := range got {
				if !contains(want, c) {
					v.add("%s: row %d has extra key %s (absent in %s)", lang, r, c, ref)
				}
			}
			if len(want) == len(got) && strings.Join(want, ",") != strings.Join(got, ",") && sameSet(want, got) {
				v.add("%s: row %d orders keys differently from %s", lang, r, ref)
			}
		}
	}
}

// Languages returns the language codes in toggle order.
func (t *Table) Languages() []string {
	return append([]string(nil), t.order...)
}

// HasLanguage reports whether lang is defined.
func (t *Table) HasLanguage(lang string) bool {
	_, ok := t.rows[lang]
	return ok
}

// Name returns the display name of a language.
func (t *Table) Name(lang string) string {
	return t.names[lang]
}

// Next returns the language following lang in toggle order.
func (t *Table) Next(lang string) string {
	for i, l := range t.order {
		if l == lang {
			return t.order[(i+1)%len(t.order)]
		}
	}
	return t.order[0]
}

// Row returns the key definitions of one row. The slice must not be modified.
func (t *Table) Row(lang string, row int) []KeyDefinition {
	if row < 0 || row >= RowCount {
		return nil
	}
	rows, ok := t.rows[lang]
	if !ok {
		return nil
	}
	return rows[row]
}

// Lookup returns the definition of code in the given row, or false if the
// language, row or key does not exist.
func (t *Table) Lookup(lang string, row int, code string) (KeyDefinition, bool) {
	pos, ok := t.index[lang][code]
	if !ok || pos.row != row {
		return KeyDefinition{}, false
	}
	return t.rows[lang][row][pos.col], true
}

// Find returns the definition of code in any row together with its row index.
func (t *Table) Find(lang, code string) (KeyDefinition, int, bool) {
	pos, ok := t.index[lang][code]
	if !ok {
		return KeyDefinition{}, 0, false
	}
	return t.rows[lang][pos.row][pos.col], pos.row, true
}

// Has reports whether code exists in the layout.
func (t *Table) Has(code string) bool {
	_, ok := t.index[t.order[0]][code]
	return ok
}

// Codes returns every key code in display order.
func (t *Table) Codes() []string {
	var out []string
	for r := 0; r < RowCount; r++ {
		out = append(out, codes(t.rows[t.order[0]][r])...)
	}
	return out
}

func codes(defs []KeyDefinition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Code
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sameSet(a, b []string) bool {
	for _, s := range a {
		if !contains(b, s) {
			return false
		}
	}
	return true
}

// ValidationError lists every defect found in a layout table.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) add(format string, args ...any) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, args...))
}

// HasIssues reports whether any defect was recorded.
func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

func (e *ValidationError) Error() string {
	return "invalid keyboard layout: " + strings.Join(e.Issues, "; ")
}
