// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("failed to copy: clipboard unsupported on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	return nil
}

// Memory keeps the last written text. Useful where no OS clipboard exists.
type Memory struct {
	Text   string
	Writes int
}

// WriteText implements Writer.
func (m *Memory) WriteText(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
