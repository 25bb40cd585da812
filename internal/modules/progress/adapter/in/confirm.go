package in

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// StaticConfirmer answers every prompt with the same value, e.g. for --yes.
type StaticConfirmer bool

func (c StaticConfirmer) Confirm(context.Context, string) (bool, error) {
	return bool(c), nil
}

// PromptConfirmer asks on out and reads a y/N answer from in. Anything other
// than y or yes declines.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c PromptConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(c.Out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
