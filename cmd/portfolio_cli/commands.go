package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-web/internal/clock"
	"portfolio-web/internal/domain"
	"portfolio-web/internal/service"
)

// printPage escribe la proyeccion en JSON o con render; un Failed termina
// con el mensaje de la pagina.
func printPage[V any](a *app, w io.Writer, page service.Page[V], render func(io.Writer, V)) error {
	if page.Failed() {
		return errors.New(page.Error)
	}
	if a.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(page.View)
	}
	render(w, page.View)
	return nil
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile and social links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := a.pages.Home(cmd.Context())
			return printPage(a, cmd.OutOrStdout(), page, func(w io.Writer, v service.HomeView) {
				fmt.Fprintf(w, "%s\n%s\n", v.Profile.Name, v.Profile.Title)
				if v.Profile.Bio != "" {
					fmt.Fprintf(w, "\n%s\n", v.Profile.Bio)
				}
				if len(v.SocialLinks) > 0 {
					fmt.Fprintln(w)
				}
				for _, link := range v.SocialLinks {
					fmt.Fprintf(w, "  %-10s %s\n", link.Platform, link.URL)
				}
			})
		},
	}
}

func newExperienceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "experience",
		Short: "Show the work and education timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := a.pages.Experience(cmd.Context())
			return printPage(a, cmd.OutOrStdout(), page, func(w io.Writer, v service.ExperienceView) {
				printTimeline(w, "Work Experience", v.Work)
				fmt.Fprintln(w)
				printTimeline(w, "Education", v.Education)
			})
		},
	}
}

func printTimeline(w io.Writer, title string, items []service.ExperienceItem) {
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  %-20s %s, %s\n", item.Period, item.Title, item.Organization)
	}
}

func newProjectsCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects, optionally filtered by category",
		Long: `Lists the project gallery. --category accepts one of:
  all, Android App, iOS App, Cross-platform App, Web development, UX/UI
Unknown categories list every project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := a.pages.Projects(cmd.Context(), category)
			return printPage(a, cmd.OutOrStdout(), page, func(w io.Writer, v service.ProjectsView) {
				fmt.Fprintf(w, "Category: %s\n", v.Selected)
				for _, p := range v.Projects {
					fmt.Fprintf(w, "  %s [%s] %s\n", p.Title, p.Category, strings.Join(p.Technologies, ", "))
				}
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryAll), "project category")
	return cmd
}

func newSkillsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List skills, technical first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := a.pages.Skills(cmd.Context())
			return printPage(a, cmd.OutOrStdout(), page, func(w io.Writer, v service.SkillsView) {
				for _, group := range v.Groups {
					fmt.Fprintln(w, group.Type)
					for _, s := range group.Skills {
						fmt.Fprintf(w, "  %-20s %3d%%\n", s.Name, s.Proficiency)
					}
				}
			})
		},
	}
}

func newContactCmd(a *app) *cobra.Command {
	var form domain.ContactSubmission
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.contact.Submit(cmd.Context(), form); err != nil {
				var verr *service.ValidationError
				if errors.As(err, &verr) {
					return errors.New(verr.Message)
				}
				a.logger.Debug("contact submit failed", zap.Error(err))
				return errors.New(service.NoticeFailed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.NoticeSent)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "your email")
	cmd.Flags().StringVar(&form.Message, "message", "", "message body")
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the stored theme mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeRepo, err := a.themeStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeRepo()
			fmt.Fprintln(cmd.OutOrStdout(), store.Get())
			return nil
		},
	}
	themeCmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeRepo, err := a.themeStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeRepo()
			mode, err := store.Toggle(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mode)
			return nil
		},
	})
	return themeCmd
}

func newClockCmd(a *app) *cobra.Command {
	var (
		lat, lon string
		count    int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the navbar clock until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var coords *clock.Coordinates
			if lat != "" || lon != "" {
				parsed, err := clock.ParseCoordinates(lat, lon)
				if err != nil {
					return err
				}
				coords = parsed
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			if interval <= 0 {
				interval = a.cfg.ClockInterval
			}
			display := clock.NewDisplay(clock.Real(), interval, a.cfg.ClockFormat,
				clock.WithLocator(clock.NewHTTPLocator(a.cfg.GeocodeURL, nil)),
				clock.WithLogger(a.logger),
			)
			out := cmd.OutOrStdout()
			printed := 0
			display.Run(ctx, coords, func(f clock.Frame) {
				if count > 0 && printed >= count {
					return
				}
				if f.Place != "" {
					fmt.Fprintf(out, "%s  %s\n", f.Time, f.Place)
				} else {
					fmt.Fprintln(out, f.Time)
				}
				printed++
				if count > 0 && printed >= count {
					cancel()
				}
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&lat, "lat", "", "latitude for the place name")
	cmd.Flags().StringVar(&lon, "lon", "", "longitude for the place name")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many frames (0 runs until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "tick interval (default CLOCK_INTERVAL)")
	return cmd
}
