package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	u, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %s)\n", u.Email, u.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.token, a.email = token, email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(context.Context) error {
	a.token, a.email = "", ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
