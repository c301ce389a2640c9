package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"

	"github.com/xxxsen/quizdesk/internal/client"
	"github.com/xxxsen/quizdesk/internal/config"
	"github.com/xxxsen/quizdesk/internal/console"
	"github.com/xxxsen/quizdesk/internal/history"
)

// errActionFailed marks a backend failure that was already reported.
var errActionFailed = errors.New("action failed")

type rootOptions struct {
	configPath string
	baseURL    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errActionFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "quizdesk",
		Short:         "operator console for the quiz backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.json")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "backend base url, overrides config")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newAdminCmd(opts),
		newCategoryCmd(opts),
		newSetCmd(opts),
		newCardCmd(opts),
		newGameCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		if err := config.ValidateBaseURL(o.baseURL); err != nil {
			return nil, err
		}
		cfg.BaseURL = o.baseURL
	}
	return cfg, nil
}

func initLogger(cfg *config.Config, toConsole bool) {
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console || toConsole,
	)
}

func newBackendClient(cfg *config.Config) *client.Client {
	var opts []client.Option
	if cfg.RequestTimeoutSeconds > 0 {
		opts = append(opts, client.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds)*time.Second))
	}
	return client.New(cfg.BaseURL, opts...)
}

func newConsole(cfg *config.Config, recorder *history.Recorder) (*console.Console, *client.Client) {
	api := newBackendClient(cfg)
	return console.New(api, recorder), api
}
