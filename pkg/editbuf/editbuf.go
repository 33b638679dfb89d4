// Package editbuf implements the cursor-split text buffer used while
// composing an entry. The logical text is the before-cursor half
// followed by the after-cursor half; the cursor sits between them.
package editbuf

// Buffer is a split-at-cursor rune buffer. All operations are safe at
// the boundaries: deleting or moving past either end is a no-op.
//
// Runes, not bytes, are the unit of editing, so multi-byte characters
// never get split.
type Buffer struct {
	before []rune
	// after is stored reversed: after[len(after)-1] is the rune under
	// the cursor. Both cursor moves are then slice appends.
	after []rune
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFrom hydrates a buffer from existing text. A cursor of zero means
// "resume at the end of the text" (the whole text goes before the
// cursor); a cursor beyond the text is clamped to the end; anything
// else splits the text at that rune index.
func NewFrom(text string, cursor int) *Buffer {
	runes := []rune(text)
	if cursor == 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	b := &Buffer{before: append([]rune(nil), runes[:cursor]...)}
	for i := len(runes) - 1; i >= cursor; i-- {
		b.after = append(b.after, runes[i])
	}
	return b
}

// InsertRune places r at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.before = append(b.before, r)
}

// InsertString places each rune of s at the cursor in order.
func (b *Buffer) InsertString(s string) {
	b.before = append(b.before, []rune(s)...)
}

// DeleteBefore removes the rune just before the cursor, if any.
func (b *Buffer) DeleteBefore() {
	if len(b.before) > 0 {
		b.before = b.before[:len(b.before)-1]
	}
}

// MoveForward advances the cursor over the next rune, if any.
func (b *Buffer) MoveForward() {
	if len(b.after) > 0 {
		b.before = append(b.before, b.after[len(b.after)-1])
		b.after = b.after[:len(b.after)-1]
	}
}

// MoveBackward retreats the cursor over the previous rune, if any.
func (b *Buffer) MoveBackward() {
	if len(b.before) > 0 {
		b.after = append(b.after, b.before[len(b.before)-1])
		b.before = b.before[:len(b.before)-1]
	}
}

// MoveStart puts the cursor before the first rune.
func (b *Buffer) MoveStart() {
	for len(b.before) > 0 {
		b.MoveBackward()
	}
}

// MoveEnd puts the cursor after the last rune.
func (b *Buffer) MoveEnd() {
	for len(b.after) > 0 {
		b.MoveForward()
	}
}

// Cursor returns the cursor position in runes.
func (b *Buffer) Cursor() int {
	return len(b.before)
}

// Len returns the logical text length in runes.
func (b *Buffer) Len() int {
	return len(b.before) + len(b.after)
}

// Text returns the committed value: both halves joined.
func (b *Buffer) Text() string {
	out := make([]rune, 0, b.Len())
	out = append(out, b.before...)
	for i := len(b.after) - 1; i >= 0; i-- {
		out = append(out, b.after[i])
	}
	return string(out)
}

// Display returns the text with marker overlaying the rune under the
// cursor, or appended when the cursor is at the end. Presentation
// only; never feed this back into storage.
func (b *Buffer) Display(marker rune) string {
	out := make([]rune, 0, b.Len()+1)
	out = append(out, b.before...)
	out = append(out, marker)
	for i := len(b.after) - 2; i >= 0; i-- {
		out = append(out, b.after[i])
	}
	return string(out)
}
