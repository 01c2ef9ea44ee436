// Package cli holds shared infrastructure for the command-line surface:
// the application context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/store"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App
}

// NewCLI opens the document store and builds the service container for
// the signed-in user.
func NewCLI(ctx context.Context) (*CLI, error) {
	st, err := store.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return &CLI{App: app.New(ctx, st)}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
