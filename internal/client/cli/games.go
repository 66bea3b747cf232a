package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/gamecatalog/internal/client/api"
)

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

// authorized runs fn with the session token. A token the server rejects is
// dropped so the user is asked to log in again.
func (a *App) authorized(fn func(token string) error) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	err := fn(a.token)
	if errors.Is(err, api.ErrUnauthorized) {
		a.token, a.email = "", ""
		return fmt.Errorf("session expired, please log in again: %w", err)
	}
	return err
}

func (a *App) List(ctx context.Context) error {
	return a.authorized(func(token string) error {
		games, err := a.api.ListGames(ctx, token)
		if err != nil {
			return err
		}
		if len(games) == 0 {
			fmt.Fprintln(a.out, "No games")
			return nil
		}

		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tGENRE\tPRICE\tSPACE")
		for _, g := range games {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%g\n", g.ID, g.Name, g.Genre, g.Price, g.Space)
		}
		return tw.Flush()
	})
}

func (a *App) readFields(optional bool) (api.GameFields, error) {
	var f api.GameFields
	var err error
	hint := ""
	if optional {
		hint = " (empty to keep)"
	}

	if f.Name, err = GetOptionalText(a.reader, "Name"+hint, a.out); err != nil {
		return f, err
	}
	if f.Price, err = GetOptionalFloat(a.reader, "Price"+hint, a.out); err != nil {
		return f, err
	}
	if f.Space, err = GetOptionalFloat(a.reader, "Space"+hint, a.out); err != nil {
		return f, err
	}
	if f.Description, err = GetOptionalText(a.reader, "Description"+hint, a.out); err != nil {
		return f, err
	}
	if f.Genre, err = GetOptionalText(a.reader, "Genre"+hint, a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) Add(ctx context.Context) error {
	return a.authorized(func(token string) error {
		f, err := a.readFields(false)
		if err != nil {
			return err
		}
		g, err := a.api.CreateGame(ctx, token, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %s (id %s)\n", g.Name, g.ID)
		return nil
	})
}

func (a *App) Update(ctx context.Context) error {
	return a.authorized(func(token string) error {
		id, err := GetSimpleText(a.reader, "Game id", a.out)
		if err != nil {
			return err
		}
		f, err := a.readFields(true)
		if err != nil {
			return err
		}
		g, err := a.api.UpdateGame(ctx, token, id, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated %s\n", g.ID)
		return nil
	})
}

func (a *App) Delete(ctx context.Context) error {
	return a.authorized(func(token string) error {
		id, err := GetSimpleText(a.reader, "Game id", a.out)
		if err != nil {
			return err
		}
		g, err := a.api.DeleteGame(ctx, token, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted %s\n", g.Name)
		return nil
	})
}
