package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/common"
)

// Prompt seams, replaced in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errBadCredentials = errors.New("invalid email or password")

// Register prompts for an email, a display name and a password and creates
// the account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Choose a password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.svc.Register(ctx, email, string(password), userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered user #%d. Type 'login' to sign in.\n", id)
	return nil
}

// Login prompts for credentials and stores the issued token locally, so
// later runs stay logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.svc.Login(ctx, email, string(password))
	if errors.Is(err, client.ErrUnauthorized) {
		return errBadCredentials
	}
	if err != nil {
		return err
	}

	if err := a.tokens.Save(ctx, token); err != nil {
		return err
	}
	a.userName = email

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
