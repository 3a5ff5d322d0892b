package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/rangecal/internal/selection"
)

var (
	errNoMatch   = errors.New("no saved selection matches")
	errAmbiguous = errors.New("id prefix matches more than one selection")
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved selection",
		Long: `Delete a saved selection by its ID.

The ID may be shortened to any unique prefix, such as the one printed
by 'rangecal list'.

Example:
  rangecal delete 1f3a9c0e`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := cmd.Context()
			id, err := a.resolveID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.Delete(ctx, id); err != nil {
				return fmt.Errorf("deleting selection: %w", err)
			}

			a.logger.Debug("deleted selection", zap.Stringer("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id.String()[:8])
			return nil
		},
	}
}

// resolveID accepts a full ID or a unique prefix of one.
func (a *App) resolveID(ctx context.Context, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return uuid.Nil, fmt.Errorf("%w %q", errNoMatch, arg)
	}
	all, err := a.repo.List(ctx, 0)
	if err != nil {
		return uuid.Nil, fmt.Errorf("listing selections: %w", err)
	}

	var match *selection.Saved
	for _, s := range all {
		if !strings.HasPrefix(s.ID.String(), prefix) {
			continue
		}
		if match != nil {
			return uuid.Nil, fmt.Errorf("%w: %q", errAmbiguous, arg)
		}
		match = s
	}
	if match == nil {
		return uuid.Nil, fmt.Errorf("%w %q", errNoMatch, arg)
	}
	return match.ID, nil
}
