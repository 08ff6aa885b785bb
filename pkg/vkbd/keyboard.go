package vkbd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pawndev/vkbd/pkg/vkbd/internal"
	"github.com/pawndev/vkbd/pkg/vkbd/layout"
)

// Variant selects one of the four glyph forms of a key.
type Variant int

const (
	VariantLower Variant = iota
	VariantUpper
	VariantCaps
	VariantShiftCaps
)

var variantClasses = [layout.VariantCount]string{
	"lowercase",
	"uppercase",
	"capson",
	"shiftcaps",
}

// Class returns the CSS class of the variant's span.
func (v Variant) Class() string {
	if v < 0 || int(v) >= len(variantClasses) {
		return ""
	}
	return variantClasses[v]
}

func (v Variant) String() string {
	return v.Class()
}

// State is the board-wide mode of the keyboard.
type State struct {
	Language string
	Shift    bool
	CapsLock bool
}

// ResolveVariant returns the visible variant of def. Caps lock with shift
// only has a distinct form on letter keys; every other key shows its shifted
// glyph instead.
func ResolveVariant(def layout.KeyDefinition, shift, capsLock bool) Variant {
	switch {
	case !capsLock && !shift:
		return VariantLower
	case !capsLock && shift:
		return VariantUpper
	case capsLock && !shift:
		return VariantCaps
	case def.Kind == layout.KindLetter:
		return VariantShiftCaps
	default:
		return VariantUpper
	}
}

// KeyView is the derived presentation of one key.
type KeyView struct {
	Code    string
	Row     int
	Variant Variant
	Glyph   string
}

// View is the derived presentation of the whole board for one State.
type View struct {
	Language string
	Keys     []KeyView
}

// Derive computes the visible variant and glyph of every key for st. It has
// no side effects; the Controller applies its result to the element tree.
func Derive(table *layout.Table, st State) View {
	view := View{Language: st.Language}
	for r := 0; r < layout.RowCount; r++ {
		for _, def := range table.Row(st.Language, r) {
			v := ResolveVariant(def, st.Shift, st.CapsLock)
			view.Keys = append(view.Keys, KeyView{
				Code:    def.Code,
				Row:     r,
				Variant: v,
				Glyph:   def.Glyphs[v],
			})
		}
	}
	return view
}

type renderedKey struct {
	code     string
	row      int
	node     Element
	langs    map[string]Element
	variants map[string][layout.VariantCount]Element
}

// Controller owns the keyboard state and the rendered key elements. It is not
// safe for concurrent use; hosts call it from their event loop only.
type Controller struct {
	table  *layout.Table
	store  PreferenceStore
	state  State
	strict bool
	logger *slog.Logger

	keys   []*renderedKey
	byCode map[string]*renderedKey

	languageListeners []func(lang string)
}

type ControllerOption func(*Controller)

// WithStrict makes operations on codes absent from the layout return
// ErrUnknownKey instead of being ignored.
func WithStrict(strict bool) ControllerOption {
	return func(c *Controller) {
		c.strict = strict
	}
}

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController seeds the active language from the store, falling back to
// the default language when the preference is absent or unknown.
func NewController(table *layout.Table, store PreferenceStore, opts ...ControllerOption) (*Controller, error) {
	if table == nil {
		return nil, errors.New("vkbd: nil layout table")
	}
	if store == nil {
		store = NewMemoryStore()
	}

	c := &Controller{
		table:  table,
		store:  store,
		strict: internal.IsDevMode(),
		logger: internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	fallback := layout.DefaultLanguage
	if !table.HasLanguage(fallback) {
		fallback = table.Languages()[0]
	}

	lang, ok := store.Get(LanguagePreferenceKey)
	switch {
	case !ok || lang == "":
		lang = fallback
		if err := store.Set(LanguagePreferenceKey, lang); err != nil {
			c.logger.Warn("Failed to store default language", "language", lang, "error", err)
		}
	case !table.HasLanguage(lang):
		c.logger.Warn("Stored language is not in the layout; using default", "stored", lang, "language", fallback)
		lang = fallback
	}
	c.state.Language = lang

	return c, nil
}

func (c *Controller) Table() *layout.Table {
	return c.table
}

func (c *Controller) State() State {
	return c.state
}

// Built reports whether Build has completed.
func (c *Controller) Built() bool {
	return c.byCode != nil
}

// Build renders the five rows of the active language into container. Every
// key carries the glyphs of all languages; only the active one is unhidden.
func (c *Controller) Build(doc Document, container Element) error {
	if c.Built() {
		return ErrAlreadyBuilt
	}

	inner := createChild(doc, container, "div", "class", "keyboard__inner")
	byCode := make(map[string]*renderedKey)
	var keys []*renderedKey

	for r := 0; r < layout.RowCount; r++ {
		row := createChild(doc, inner, "div", "class", "row")
		for _, def := range c.table.Row(c.state.Language, r) {
			rk, err := c.createKey(doc, row, def, r)
			if err != nil {
				return err
			}
			keys = append(keys, rk)
			byCode[def.Code] = rk
		}
	}

	c.keys = keys
	c.byCode = byCode
	c.apply()

	c.logger.Debug("Keyboard built", "keys", len(keys), "language", c.state.Language)
	return nil
}

func (c *Controller) createKey(doc Document, parent Element, def layout.KeyDefinition, row int) (*renderedKey, error) {
	node := createChild(doc, parent, "div", "class", "key", attrName, def.Code)
	if def.Class != "" {
		node.AddClass(def.Class)
	}

	rk := &renderedKey{
		code:     def.Code,
		row:      row,
		node:     node,
		langs:    make(map[string]Element),
		variants: make(map[string][layout.VariantCount]Element),
	}

	for _, lang := range c.table.Languages() {
		langDef, ok := c.table.Lookup(lang, row, def.Code)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no %s key in row %d", ErrUnknownKey, lang, def.Code, row)
		}

		span := createChild(doc, node, "span", attrLang, lang)
		var variants [layout.VariantCount]Element
		for j := range variants {
			v := createChild(doc, span, "span", "class", variantClasses[j])
			v.SetText(langDef.Glyphs[j])
			variants[j] = v
		}
		rk.langs[lang] = span
		rk.variants[lang] = variants
	}
	return rk, nil
}

// apply reflects the derived view of the current state onto every key.
func (c *Controller) apply() {
	if !c.Built() {
		return
	}

	view := Derive(c.table, c.state)
	for _, kv := range view.Keys {
		rk, ok := c.byCode[kv.Code]
		if !ok {
			continue
		}
		for lang, span := range rk.langs {
			active := lang == view.Language
			setHidden(span, !active)
			for j, v := range rk.variants[lang] {
				setHidden(v, !active || Variant(j) != kv.Variant)
			}
		}
		rk.node.SetAttribute(attrValue, kv.Glyph)
	}
}

// SetLanguage switches the visible key set and stores the preference.
func (c *Controller) SetLanguage(lang string) error {
	if !c.table.HasLanguage(lang) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if lang == c.state.Language {
		return nil
	}

	c.state.Language = lang
	storeErr := c.store.Set(LanguagePreferenceKey, lang)
	c.apply()

	c.logger.Debug("Language changed", "language", lang)
	for _, fn := range c.languageListeners {
		fn(lang)
	}

	if storeErr != nil {
		return fmt.Errorf("failed to store language preference: %w", storeErr)
	}
	return nil
}

// ToggleLanguage switches to the next language of the layout.
func (c *Controller) ToggleLanguage() error {
	return c.SetLanguage(c.table.Next(c.state.Language))
}

func (c *Controller) SetShift(pressed bool) {
	c.state.Shift = pressed
	c.apply()
}

func (c *Controller) SetCapsLock(active bool) {
	c.state.CapsLock = active
	c.apply()
}

func (c *Controller) ToggleCapsLock() {
	c.SetCapsLock(!c.state.CapsLock)
}

// OnLanguageChange registers fn to run after every language switch.
func (c *Controller) OnLanguageChange(fn func(lang string)) {
	c.languageListeners = append(c.languageListeners, fn)
}

func (c *Controller) key(code string) (*renderedKey, error) {
	if !c.Built() {
		return nil, ErrNotBuilt
	}
	rk, ok := c.byCode[code]
	if ok {
		return rk, nil
	}
	if c.strict {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, code)
	}
	c.logger.Debug("Ignoring key absent from layout", "code", code)
	return nil, nil
}

// Press marks a key as held down.
func (c *Controller) Press(code string) error {
	rk, err := c.key(code)
	if rk != nil {
		rk.node.AddClass(classPressed)
	}
	return err
}

// Release clears the held-down marker of a key.
func (c *Controller) Release(code string) error {
	rk, err := c.key(code)
	if rk != nil {
		rk.node.RemoveClass(classPressed)
	}
	return err
}

// SetActive sets the latched modifier marker of a key.
func (c *Controller) SetActive(code string, active bool) error {
	rk, err := c.key(code)
	if rk != nil {
		if active {
			rk.node.AddClass(classActive)
		} else {
			rk.node.RemoveClass(classActive)
		}
	}
	return err
}

// ToggleActive flips the latched modifier marker of a key.
func (c *Controller) ToggleActive(code string) error {
	rk, err := c.key(code)
	if rk == nil {
		return err
	}
	return c.SetActive(code, !rk.node.HasClass(classActive))
}

func (c *Controller) IsActive(code string) bool {
	rk, ok := c.byCode[code]
	return ok && rk.node.HasClass(classActive)
}

func (c *Controller) IsPressed(code string) bool {
	rk, ok := c.byCode[code]
	return ok && rk.node.HasClass(classPressed)
}

// Has reports whether code is a rendered key.
func (c *Controller) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Value returns the glyph a key currently inserts, as published in its
// data-value attribute.
func (c *Controller) Value(code string) (string, bool) {
	rk, ok := c.byCode[code]
	if !ok {
		return "", false
	}
	return rk.node.Attribute(attrValue)
}

// KeySnapshot is the rendered state of one key.
type KeySnapshot struct {
	Code    string
	Row     int
	Kind    layout.Kind
	Class   string
	Variant Variant
	Glyph   string
	Pressed bool
	Active  bool
}

// Snapshot returns the rendered state of every key in display order.
func (c *Controller) Snapshot() []KeySnapshot {
	out := make([]KeySnapshot, 0, len(c.keys))
	for _, rk := range c.keys {
		def, ok := c.table.Lookup(c.state.Language, rk.row, rk.code)
		if !ok {
			continue
		}
		glyph, _ := rk.node.Attribute(attrValue)
		out = append(out, KeySnapshot{
			Code:    rk.code,
			Row:     rk.row,
			Kind:    def.Kind,
			Class:   def.Class,
			Variant: ResolveVariant(def, c.state.Shift, c.state.CapsLock),
			Glyph:   glyph,
			Pressed: rk.node.HasClass(classPressed),
			Active:  rk.node.HasClass(classActive),
		})
	}
	return out
}
