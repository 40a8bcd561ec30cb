// Package share delivers an assessment summary outside the app.
package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/abhisek/symptoquiz/internal/store"
)

// Receipt describes where shared text ended up.
type Receipt struct {
	Target string // "clipboard" or a file path
}

// Sharer hands text to some destination.
type Sharer interface {
	Share(ctx context.Context, text string) (Receipt, error)
}

// ClipboardSharer copies text to the system clipboard.
type ClipboardSharer struct {
	write func(string) error
}

// NewClipboard returns a Sharer backed by the system clipboard.
func NewClipboard() *ClipboardSharer {
	return &ClipboardSharer{write: clipboard.WriteAll}
}

func (c *ClipboardSharer) Share(ctx context.Context, text string) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if clipboard.Unsupported {
		return Receipt{}, errors.New("clipboard unsupported on this system")
	}
	if err := c.write(text); err != nil {
		return Receipt{}, fmt.Errorf("write clipboard: %w", err)
	}
	return Receipt{Target: "clipboard"}, nil
}

// FileSharer appends each shared text to a file, separated by a timestamp line.
type FileSharer struct {
	Path string
	now  func() time.Time
}

// NewFile returns a Sharer that appends to path.
func NewFile(path string) *FileSharer {
	return &FileSharer{Path: path, now: time.Now}
}

func (f *FileSharer) Share(ctx context.Context, text string) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if err := store.EnsureDir(f.Path); err != nil {
		return Receipt{}, fmt.Errorf("create share dir: %w", err)
	}

	fh, err := os.OpenFile(f.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Receipt{}, fmt.Errorf("open share file: %w", err)
	}
	defer fh.Close()

	entry := fmt.Sprintf("--- %s ---\n%s\n\n", f.now().Format(time.RFC3339), text)
	if _, err := fh.WriteString(entry); err != nil {
		return Receipt{}, fmt.Errorf("write share file: %w", err)
	}
	return Receipt{Target: f.Path}, nil
}

// fallback tries each Sharer in turn until one succeeds.
type fallback struct {
	sharers []Sharer
}

// Fallback returns a Sharer that tries sharers in order. The returned error
// joins every failure when none succeed.
func Fallback(sharers ...Sharer) Sharer {
	return &fallback{sharers: sharers}
}

func (f *fallback) Share(ctx context.Context, text string) (Receipt, error) {
	var errs []error
	for _, s := range f.sharers {
		r, err := s.Share(ctx, text)
		if err == nil {
			return r, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Receipt{}, errors.New("no share target configured")
	}
	return Receipt{}, errors.Join(errs...)
}
