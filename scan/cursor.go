// Package scan provides the low level text cursors used by the pattern
// engine: a positionable byte cursor, a pattern-text cursor that knows about
// quoting, escapes, repeat counts and embedded sub-patterns, and a value
// cursor that knows about digits, fractions and case-insensitive matching.
package scan

import "strings"

// Sentinel is the value of Current when the cursor sits before the first or
// after the last character of its text.
const Sentinel byte = 0

// Cursor is a read-only positionable view over a string. The index ranges
// from -1 (before the start) to len(text) (past the end); Current is
// Sentinel at either boundary. Move operations clamp at the boundaries and
// report failure instead of wrapping.
type Cursor struct {
	text string
	idx  int
	cur  byte
}

func newCursor(text string) Cursor {
	return Cursor{text: text, idx: -1, cur: Sentinel}
}

// Length reports the length of the underlying text in bytes.
func (c *Cursor) Length() int { return len(c.text) }

// Index reports the current position, in [-1, Length()].
func (c *Cursor) Index() int { return c.idx }

// Current is the byte at the current position, or Sentinel at a boundary.
func (c *Cursor) Current() byte { return c.cur }

// Text returns the full text the cursor was created over.
func (c *Cursor) Text() string { return c.text }

// Remainder returns the text from the current position to the end. It is
// empty at either boundary sentinel position past the end, and the whole
// text when the cursor has not been moved yet.
func (c *Cursor) Remainder() string {
	if c.idx < 0 {
		return c.text
	}
	if c.idx >= len(c.text) {
		return ""
	}
	return c.text[c.idx:]
}

// Move repositions the cursor to an absolute index. Out of range targets
// clamp to the nearest boundary and report false.
func (c *Cursor) Move(target int) bool {
	if target >= 0 && target < len(c.text) {
		c.idx = target
		c.cur = c.text[target]
		return true
	}
	if target < 0 {
		c.idx = -1
	} else {
		c.idx = len(c.text)
	}
	c.cur = Sentinel
	return false
}

// MoveNext advances one position, reporting false when already past the end.
func (c *Cursor) MoveNext() bool { return c.Move(c.idx + 1) }

// MovePrevious steps back one position, reporting false when already before
// the start.
func (c *Cursor) MovePrevious() bool { return c.Move(c.idx - 1) }

// PeekNext returns the byte after the current position without moving, or
// Sentinel when there is none.
func (c *Cursor) PeekNext() byte {
	if next := c.idx + 1; next >= 0 && next < len(c.text) {
		return c.text[next]
	}
	return Sentinel
}

// String renders the text with a caret marking the current position, for
// error messages and debugging.
func (c *Cursor) String() string {
	switch {
	case c.idx < 0:
		return "^" + c.text
	case c.idx >= len(c.text):
		return c.text + "^"
	default:
		var sb strings.Builder
		sb.WriteString(c.text[:c.idx])
		sb.WriteByte('^')
		sb.WriteString(c.text[c.idx:])
		return sb.String()
	}
}
