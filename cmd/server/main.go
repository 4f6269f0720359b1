// Command hospital runs the admin console, the reference REST API and the
// database maintenance tasks.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/YamileOchoa/Hospital-System/internal/api"
	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
	"github.com/YamileOchoa/Hospital-System/internal/db"
	"github.com/YamileOchoa/Hospital-System/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital administration console",
		SilenceUsage: true,
	}
	root.AddCommand(webCmd(), apiCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func webCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the admin console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = a.cfg.Server.Port
			}
			opts := server.Options{
				API:           apiclient.New(a.cfg.API.BaseURL, apiclient.WithTimeout(a.cfg.API.RequestTimeout())),
				Logger:        a.log,
				RedirectDelay: a.cfg.App.Redirect(),
				Lang:          a.cfg.App.Lang,
				Dev:           a.cfg.App.Dev,
			}
			if dir, _ := cmd.Flags().GetString("templates"); dir != "" {
				opts.Templates = os.DirFS(dir)
			}
			a.log.Info().Str("api", a.cfg.API.BaseURL).Msg("console configured")
			return a.serve("web", a.httpServer(port, server.New(opts)))
		},
	}
	cmd.Flags().String("port", "", "listen port (defaults to PORT)")
	cmd.Flags().String("templates", "", "serve templates from this directory instead of the embedded set")
	return cmd
}

func apiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Start the reference REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			conn, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer a.closeDB(conn)
			if a.cfg.App.Migrations {
				if err := db.Migrate(conn); err != nil {
					return err
				}
				a.log.Info().Msg("migrations completed")
			}
			if a.cfg.App.Seed {
				if err := db.Seed(conn); err != nil {
					return err
				}
				a.log.Info().Msg("seed completed")
			}
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = a.cfg.Server.APIPort
			}
			return a.serve("api", a.httpServer(port, api.New(conn, a.log)))
		},
	}
	cmd.Flags().String("port", "", "listen port (defaults to API_PORT)")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the API database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(a *app, conn *gorm.DB) error {
				if err := db.Migrate(conn); err != nil {
					return err
				}
				a.log.Info().Msg("migrations completed successfully")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the baseline specialties and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(a *app, conn *gorm.DB) error {
				if err := db.Seed(conn); err != nil {
					return err
				}
				a.log.Info().Msg("seeding completed successfully")
				return nil
			})
		},
	}
}

func withDB(ctx context.Context, fn func(*app, *gorm.DB) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	conn, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer a.closeDB(conn)
	return fn(a, conn)
}
