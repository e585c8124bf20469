package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ogurasousui/employee-record/internal/adapters/console"
	"github.com/ogurasousui/employee-record/internal/core/employee"
	"github.com/ogurasousui/employee-record/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		log.Fatalf("employee: %v", err)
	}
}

type options struct {
	configPath string
	today      string
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "employee",
		Short:         "Validate an employee profile and compute derived values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to profile file (defaults to CONFIG_PATH env or "+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&opts.today, "today", "", "evaluate as of this date (DD/MM/YYYY) instead of the system clock")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the employee record, salary, discount and shipping costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, clock, err := opts.load()
			if err != nil {
				return err
			}

			h := console.NewProfileHandler(employee.NewService(clock), cmd.OutOrStdout())
			report, err := h.Show(cmd.Context(), cfg.Employee.Input())
			if err != nil {
				return err
			}
			if n := len(report.Rejected); n > 0 {
				log.Printf("%d field(s) rejected, previous values kept", n)
			}
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Exit with an error when any profile field is rejected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, clock, err := opts.load()
			if err != nil {
				return err
			}

			res, err := employee.NewService(clock).Onboard(cmd.Context(), cfg.Employee.Input())
			if err != nil {
				return err
			}
			if len(res.Rejected) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "ok: %d field(s) accepted\n", len(res.Accepted))
				return err
			}
			if err := console.RenderRejections(cmd.OutOrStdout(), res.Rejected); err != nil {
				return err
			}
			return fmt.Errorf("%d field(s) rejected: %w", len(res.Rejected), res.Err())
		},
	}

	root.AddCommand(showCmd, checkCmd)
	return root
}

func (o *options) load() (*config.Config, employee.Clock, error) {
	cfg, err := config.Load(config.ResolvePath(o.configPath))
	if err != nil {
		return nil, nil, err
	}

	clock := cfg.Clock.Source()
	if o.today != "" {
		today, err := employee.ParseDate(o.today)
		if err != nil {
			return nil, nil, fmt.Errorf("--today: %w", err)
		}
		clock = employee.FixedClock(today)
	}
	return cfg, clock, nil
}
