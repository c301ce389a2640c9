package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xxxsen/quizdesk/internal/console"
	"github.com/xxxsen/quizdesk/internal/model"
)

// actionFunc fills the console drafts from flags and runs the action.
type actionFunc func(ctx context.Context, c *console.Console) []model.Outcome

func runAction(cmd *cobra.Command, opts *rootOptions, fn actionFunc) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	if cfg.LogConfig.File != "" {
		initLogger(cfg, false)
	}
	c, _ := newConsole(cfg, nil)
	for _, outcome := range fn(cmd.Context(), c) {
		if !outcome.OK {
			fmt.Fprintln(cmd.ErrOrStderr(), outcome.Alert)
			return errActionFailed
		}
		fmt.Fprintln(cmd.OutOrStdout(), outcome.Alert)
		if outcome.GameCode != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "game code:", outcome.GameCode)
		}
	}
	return nil
}

func newAdminCmd(opts *rootOptions) *cobra.Command {
	adminCmd := &cobra.Command{Use: "admin", Short: "admin actions"}

	var admin model.AdminCredentials
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "register an admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(ctx context.Context, c *console.Console) []model.Outcome {
				c.SetAdmin(admin)
				return []model.Outcome{c.RegisterAdmin(ctx)}
			})
		},
	}
	registerCmd.Flags().StringVar(&admin.Username, "username", "", "admin username")
	registerCmd.Flags().StringVar(&admin.Password, "password", "", "admin password")
	adminCmd.AddCommand(registerCmd)
	return adminCmd
}

func newCategoryCmd(opts *rootOptions) *cobra.Command {
	categoryCmd := &cobra.Command{Use: "category", Short: "category actions"}

	category := model.DefaultDrafts().Category
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(ctx context.Context, c *console.Console) []model.Outcome {
				c.SetCategory(category)
				return []model.Outcome{c.CreateCategory(ctx)}
			})
		},
	}
	createCmd.Flags().StringVar(&category.Name, "name", category.Name, "category name")
	createCmd.Flags().StringVar(&category.Color, "color", category.Color, "category color as #rrggbb")
	categoryCmd.AddCommand(createCmd)
	return categoryCmd
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	setCmd := &cobra.Command{Use: "set", Short: "set actions"}

	set := model.DefaultDrafts().Set
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "create a set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(ctx context.Context, c *console.Console) []model.Outcome {
				c.SetSet(set)
				return []model.Outcome{c.CreateSet(ctx)}
			})
		},
	}
	createCmd.Flags().StringVar(&set.Name, "name", set.Name, "set name")
	createCmd.Flags().IntVar(&set.CategoryID, "category-id", set.CategoryID, "category id")
	setCmd.AddCommand(createCmd)
	return setCmd
}

func newCardCmd(opts *rootOptions) *cobra.Command {
	cardCmd := &cobra.Command{Use: "card", Short: "card actions"}

	card := model.DefaultDrafts().Card
	var hashtags string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "create a card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(ctx context.Context, c *console.Console) []model.Outcome {
				c.SetCard(card)
				c.SetHashtagsText(hashtags)
				return []model.Outcome{c.CreateCard(ctx)}
			})
		},
	}
	createCmd.Flags().IntVar(&card.Number, "number", card.Number, "card number")
	createCmd.Flags().StringVar(&card.Description, "description", card.Description, "card description")
	createCmd.Flags().StringVar(&hashtags, "hashtags", "", `hashtags joined by ", "`)
	createCmd.Flags().IntVar(&card.SetID, "set-id", card.SetID, "set id")
	cardCmd.AddCommand(createCmd)
	return cardCmd
}

func newGameCmd(opts *rootOptions) *cobra.Command {
	gameCmd := &cobra.Command{Use: "game", Short: "game actions"}

	game := model.DefaultDrafts().Game
	var withQR bool
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "start a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(ctx context.Context, c *console.Console) []model.Outcome {
				c.SetGame(game)
				started := c.StartGame(ctx)
				if !started.OK || !withQR {
					return []model.Outcome{started}
				}
				return []model.Outcome{started, c.GenerateQR(ctx)}
			})
		},
	}
	startCmd.Flags().IntVar(&game.HostID, "host-id", game.HostID, "host id")
	startCmd.Flags().BoolVar(&withQR, "qr", false, "request the qr for the returned game code")

	var code string
	qrCmd := &cobra.Command{
		Use:   "qr",
		Short: "request the qr for a game code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, opts, func(ctx context.Context, c *console.Console) []model.Outcome {
				c.SetCode(code)
				return []model.Outcome{c.GenerateQR(ctx)}
			})
		},
	}
	qrCmd.Flags().StringVar(&code, "code", "", "game code")

	gameCmd.AddCommand(startCmd, qrCmd)
	return gameCmd
}
