package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported означает, что в системе нет доступного буфера обмена.
var ErrUnsupported = errors.New("clipboard is unsupported")

// System записывает текст в системный буфер обмена.
type System struct{}

// WriteText записывает text в буфер обмена.
func (System) WriteText(text string) error {
	const op = "write clipboard"

	if clipboard.Unsupported {
		return fmt.Errorf("%s: %w", op, ErrUnsupported)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
