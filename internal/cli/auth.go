package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/wisebook/wisebook/internal/accounts"
)

// Register prompts for the new account fields and logs the user in on
// success. Failures surface as user-facing messages, never as raised errors.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.accounts.Register(ctx, name, email, password)
	if err != nil {
		printlnFn(registerMessage(err))
		return nil
	}

	a.state.SetUser(session)
	printlnFn(fmt.Sprintf("Welcome, %s!", session.Name))
	return nil
}

// Login prompts for credentials. A failed attempt leaves any restored
// session in place.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.accounts.Login(ctx, email, password)
	if err != nil {
		printlnFn(loginMessage(err))
		return nil
	}

	a.state.SetUser(session)
	printlnFn(fmt.Sprintf("Logged in as %s.", session.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.accounts.Logout(ctx)
	a.state.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	session := a.accounts.CurrentSession(ctx)
	if session == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> — level %d, %d xp", session.Name, session.Email, session.Level, session.XP))
	return nil
}

// registerMessage maps registration errors to user-facing wording.
func registerMessage(err error) string {
	if errors.Is(err, accounts.ErrEmailTaken) {
		return "This email is already in use."
	}
	return "Could not register the account. Please try again."
}

// loginMessage maps login errors to user-facing wording. Unknown email and
// wrong password are deliberately kept distinct, matching the historical
// behavior of the app.
func loginMessage(err error) string {
	switch {
	case errors.Is(err, accounts.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return "Incorrect password."
	default:
		return "Could not log in. Please try again."
	}
}
