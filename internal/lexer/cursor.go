package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"drift/internal/source"
)

// Cursor — байтовый курсор по содержимому файла.
type Cursor struct {
	file  *source.File
	pos   uint32
	limit uint32
}

func NewCursor(file *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("file content length overflow: %w", err))
	}
	return Cursor{file: file, pos: 0, limit: limit}
}

func (c *Cursor) EOF() bool {
	return c.pos >= c.limit
}

// Peek возвращает текущий байт, 0 на EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.pos]
}

// PeekAt возвращает байт на смещении n от текущей позиции, 0 за границей.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.pos+n >= c.limit {
		return 0
	}
	return c.file.Content[c.pos+n]
}

// Bump съедает один байт.
func (c *Cursor) Bump() {
	if !c.EOF() {
		c.pos++
	}
}

func (c *Cursor) Offset() uint32 {
	return c.pos
}

func (c *Cursor) Span(start uint32) source.Span {
	return source.Span{File: c.file.ID, Start: start, End: c.pos}
}

func (c *Cursor) Text(start uint32) string {
	return string(c.file.Content[start:c.pos])
}
