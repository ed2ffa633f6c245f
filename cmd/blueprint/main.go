package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pbaille/blueprint/internal/di"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/render"
	"github.com/pbaille/blueprint/internal/store"
	"github.com/pbaille/blueprint/internal/structures"
	"github.com/pbaille/blueprint/internal/submission"
	"github.com/spf13/cobra"
)

var flags structures.CliFlags

func main() {
	rootCmd := &cobra.Command{
		Use:           "blueprint",
		Short:         "Zodiac sign and life path readings from birth details",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.DBPath, "db", "", "sqlite database path (default "+providers.DefaultDBPath()+")")
	rootCmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "debug logging")

	rootCmd.AddCommand(revealCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		render.TextError(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

func revealCmd() *cobra.Command {
	var input domain.BirthInput

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Generate and save a reading (interactive without --name/--date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, cleanup, err := di.InitRuntime(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if input.FullName == "" && input.BirthDate == "" {
				return runInteractive(cmd.Context(), rt.Service)
			}

			reading, err := rt.Service.Submit(cmd.Context(), input)
			if err != nil {
				return errors.New(submission.UserMessage(err))
			}
			return render.Text(os.Stdout, reading)
		},
	}

	cmd.Flags().StringVar(&input.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&input.BirthDate, "date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.BirthTime, "time", "", "birth time (HH:MM, optional)")
	cmd.Flags().StringVar(&input.BirthPlace, "place", "", "birth place (optional)")
	return cmd
}

func signCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sign [date]",
		Short: "Show the reading for a birth date without saving it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				date = args[0]
			}

			result, in, err := submission.Preview(date)
			if err != nil {
				return errors.New(submission.UserMessage(err))
			}

			return render.Text(os.Stdout, &domain.Reading{
				Chart: domain.Chart{
					FullName:       "Born " + strings.TrimSpace(date),
					ZodiacSign:     result.Sign.String(),
					LifePathNumber: result.LifePath,
				},
				Insights: in,
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "birth date (YYYY-MM-DD)")
	return cmd
}

func listCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, cleanup, err := di.InitRuntime(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			charts, err := rt.Store.ListCharts(cmd.Context(), limit, 0)
			if err != nil {
				return err
			}

			printCharts(charts, "No charts yet.")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of charts to show")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a stored reading (id prefix accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, cleanup, err := di.InitRuntime(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := rt.Store.FindChartID(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("chart not found: %s", args[0])
			}
			if err != nil {
				return err
			}

			reading, err := rt.Store.GetReading(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render.Text(os.Stdout, reading)
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [name]",
		Short: "Search charts by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, cleanup, err := di.InitRuntime(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			charts, err := rt.Store.SearchCharts(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			printCharts(charts, "No matching charts.")
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, cleanup, err := di.InitServer(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&flags.Addr, "addr", "a", "", "server address (default :8080)")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored reading to a zstd-compressed JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, cleanup, err := di.InitExporter(&flags)
			if err != nil {
				return err
			}
			defer cleanup()
			defer exporter.Close()

			n, err := exporter.Export(cmd.Context(), out)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d readings to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "blueprint-export.json.zst", "output file")
	return cmd
}

func printCharts(charts []domain.Chart, empty string) {
	if len(charts) == 0 {
		fmt.Println(empty)
		return
	}
	for _, c := range charts {
		fmt.Println(render.ChartLine(c))
	}
}
