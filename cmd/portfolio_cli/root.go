package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-web/internal/api"
	"portfolio-web/internal/config"
	"portfolio-web/internal/repository"
	"portfolio-web/internal/service"
	"portfolio-web/internal/theme"
)

// cliThemeKey es la clave bajo la que la CLI guarda su tema.
const cliThemeKey = "cli"

// app agrupa las dependencias que comparten los subcomandos.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *api.Client
	pages   *service.PageService
	contact *service.ContactService

	apiURL  string
	verbose bool
	asJSON  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "portfolio_cli",
		Short: "Browse the portfolio from the terminal",
		Long: `portfolio_cli reads the same backend API as the website and prints
the profile, experience timeline, project gallery and skills.

It can also send a contact message, toggle the stored theme and show the
navbar clock.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "backend base URL (default API_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(
		newProfileCmd(a),
		newExperienceCmd(a),
		newProjectsCmd(a),
		newSkillsCmd(a),
		newContactCmd(a),
		newThemeCmd(a),
		newClockCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if a.verbose {
		a.logger, _ = zap.NewDevelopment()
	} else {
		a.logger = zap.NewNop()
	}

	baseURL := cfg.APIBaseURL
	if a.apiURL != "" {
		baseURL = a.apiURL
	}
	a.client = api.NewClient(baseURL, nil, a.logger)
	a.pages = service.NewPageService(a.logger, a.client)
	a.contact = service.NewContactService(a.logger, a.client, nil)
	return nil
}

// themeStore abre el repositorio configurado y devuelve el store de la CLI.
func (a *app) themeStore(ctx context.Context) (*theme.Store, func(), error) {
	repo, closeRepo, err := repository.OpenThemeRepository(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, nil, err
	}
	return theme.NewStore(ctx, cliThemeKey, repo, a.logger), closeRepo, nil
}
