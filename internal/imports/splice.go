package imports

import (
	"bufio"
	"io"

	"drift/internal/format"
)

// LineRange is a half-open range [First, End) of 1-based line numbers.
type LineRange struct {
	First uint32
	End   uint32
}

// Contains reports whether the 1-based line lies inside the range.
func (r LineRange) Contains(line uint32) bool {
	return line >= r.First && line < r.End
}

// Rewrite streams src into dst, replacing the import block with the sorted
// imports still marked used; every line outside the block is copied verbatim,
// terminator included (and a missing final terminator stays missing).
//
// With an empty registry the input is copied unchanged. A read failure while
// scanning silently truncates the remaining output: whatever was already
// produced stands, and no error is reported. Write failures are returned.
func Rewrite(dst io.Writer, src io.Reader, reg *Registry) error {
	block, hasBlock := reg.BlockRange()

	br := bufio.NewReader(src)
	line := uint32(0)
	for {
		text, err := br.ReadBytes('\n')
		if len(text) > 0 {
			line++
			switch {
			case !hasBlock || !block.Contains(line):
				if _, werr := dst.Write(text); werr != nil {
					return werr
				}
			case line == block.First:
				if werr := writeRetained(dst, reg); werr != nil {
					return werr
				}
			default:
				// строка внутри блока — отбрасываем (комментарии и
				// пустые строки между импортами не сохраняются)
			}
		}
		if err != nil {
			// io.EOF — нормальное завершение; любая другая ошибка
			// сканирования обрезает хвост, уже записанное остаётся.
			return nil
		}
	}
}

// writeRetained renders the kept imports, each with a single terminator.
// Если не осталось ни одного — блок схлопывается в ноль строк.
func writeRetained(dst io.Writer, reg *Registry) error {
	for _, rec := range reg.Sorted() {
		if !rec.Used {
			continue
		}
		if _, err := io.WriteString(dst, format.Import(rec.Imp)); err != nil {
			return err
		}
		if _, err := dst.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
