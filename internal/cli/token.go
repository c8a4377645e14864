package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gryd/internal/keyring"
)

type TokenCmd struct {
	Set    TokenSetCmd    `cmd:"" help:"Store an API token for an external source."`
	Show   TokenShowCmd   `cmd:"" help:"Check whether a token is stored for a source."`
	Delete TokenDeleteCmd `cmd:"" help:"Remove a stored token."`
}

type TokenSetCmd struct {
	Source string `arg:"" help:"External source: github or gitlab."`
	Token  string `help:"Token value; omit to be prompted."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	source, err := parseDataSource(c.Source)
	if err != nil {
		return err
	}

	token := c.Token
	if token == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("API token for %s", source)).
				EchoMode(huh.EchoModePassword).
				Value(&token),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := keyring.SetToken(source, token); err != nil {
		return err
	}
	fmt.Printf("Stored token for %s\n", source)
	return nil
}

type TokenShowCmd struct {
	Source string `arg:"" help:"External source: github or gitlab."`
}

func (c *TokenShowCmd) Run(ctx *Context) error {
	source, err := parseDataSource(c.Source)
	if err != nil {
		return err
	}

	_, err = keyring.GetToken(source)
	switch {
	case err == nil:
		fmt.Printf("A token is stored for %s\n", source)
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Printf("No token stored for %s\n", source)
		return nil
	default:
		return err
	}
}

type TokenDeleteCmd struct {
	Source string `arg:"" help:"External source: github or gitlab."`
}

func (c *TokenDeleteCmd) Run(ctx *Context) error {
	source, err := parseDataSource(c.Source)
	if err != nil {
		return err
	}

	if err := keyring.DeleteToken(source); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("No token stored for %s\n", source)
			return nil
		}
		return err
	}
	fmt.Printf("Deleted token for %s\n", source)
	return nil
}
