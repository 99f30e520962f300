package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
)

// userID reads the user id out of the stored token without asking the
// server.
func (a *App) userID(ctx context.Context) (int64, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}
	id, err := a.claims.UserID(token)
	if err != nil {
		_ = a.tokens.Clear(ctx)
		return 0, err
	}
	return id, nil
}

// verify asks the server whether the stored token is still accepted and
// forgets it when it is not.
func (a *App) verify(ctx context.Context) error {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return err
	}

	v, err := a.svc.Verify(ctx, token)
	if err != nil {
		return err
	}
	if !v.Success {
		_ = a.tokens.Clear(ctx)
		return fmt.Errorf("%w: %s", client.ErrUnauthorized, v.Message)
	}
	return nil
}

// Whoami prints the logged-in user after checking the session with the
// server.
func (a *App) Whoami(ctx context.Context) error {
	id, err := a.userID(ctx)
	if err != nil {
		return err
	}
	if err := a.verify(ctx); err != nil {
		return err
	}

	u, err := a.svc.GetUser(ctx, id)
	if err != nil {
		return a.checked(ctx, err)
	}
	a.userName = u.UserName

	fmt.Fprintf(a.out, "#%d %s <%s>, theme %s\n", u.ID, u.UserName, u.Email, u.Theme)
	return nil
}

// Theme changes the web UI theme of the logged-in user.
func (a *App) Theme(ctx context.Context, args []string) error {
	usage := "theme <" + strings.Join(api.Themes, "|") + ">"
	if len(args) != 1 || !slices.Contains(api.Themes, args[0]) {
		return usageError(usage)
	}

	id, err := a.userID(ctx)
	if err != nil {
		return err
	}

	out, err := a.svc.UpdateTheme(ctx, id, args[0])
	if err != nil {
		return a.checked(ctx, err)
	}

	fmt.Fprintf(a.out, "Theme set to %s\n", out.Theme)
	return nil
}
