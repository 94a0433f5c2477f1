package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/date-period/internal/config"
	"github.com/username/date-period/internal/report"
	"github.com/username/date-period/pkg/dateutil"
	"github.com/username/date-period/pkg/period"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <period>",
		Short: "Show the date span and neighbours of a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}

			layout := cfg.Output.DateLayout
			first := p.FirstDay()
			last := p.LastDay()
			days := int(last.Sub(first).Hours()/24) + 1

			fmt.Printf("Period:      %s (%s)\n", p, p.Granularity())
			fmt.Printf("First day:   %s\n", first.Format(layout))
			fmt.Printf("Last day:    %s\n", last.Format(layout))
			fmt.Printf("Days:        %d\n", days)

			if parent, ok := p.Aggregate(); ok {
				fmt.Printf("Parent:      %s\n", parent)
			} else {
				fmt.Printf("Parent:      - (coarsest granularity)\n")
			}

			if children, err := p.Decompose(); err == nil {
				fmt.Printf("Children:    %d (%s..%s)\n", len(children), children[0], children[len(children)-1])
			} else {
				fmt.Printf("Children:    - (finest granularity)\n")
			}

			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	var granularity string

	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "List periods covering a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			g, start, end, err := resolveRangeArgs(cfg, granularity, args[0], args[1])
			if err != nil {
				return err
			}

			periods, err := period.Between(g, start, end)
			if err != nil {
				return err
			}

			logger.Info("Range enumerated",
				zap.Stringer("granularity", g),
				zap.Time("start", start),
				zap.Time("end", end),
				zap.Int("count", len(periods)))

			for _, p := range periods {
				fmt.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "Period granularity: year, quarter, month or day (default from config)")

	return cmd
}

func splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <period>",
		Short: "Decompose a period into its child periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}

			children, err := p.Decompose()
			if err != nil {
				return err
			}

			for _, child := range children {
				fmt.Println(child)
			}
			return nil
		},
	}
}

func nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <period>",
		Short: "Print the next period of the same granularity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println(p.Next())
			return nil
		},
	}
}

func prevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev <period>",
		Short: "Print the previous period of the same granularity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}
			prev, err := p.Prev()
			if err != nil {
				return err
			}
			fmt.Println(prev)
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var granularity string

	cmd := &cobra.Command{
		Use:   "report <start> <end>",
		Short: "Print a period breakdown table for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			g, start, end, err := resolveRangeArgs(cfg, granularity, args[0], args[1])
			if err != nil {
				return err
			}

			builder := report.NewBuilder(logger)
			r, err := builder.Build(g, start, end)
			if err != nil {
				return err
			}

			layout := cfg.Output.DateLayout
			fmt.Printf("📊 Range breakdown (%s to %s, %s)\n",
				r.Start.Format(layout), r.End.Format(layout), r.Granularity)
			fmt.Println("═══════════════════════════════════════════════════════")
			fmt.Println("  Period    | First day  | Last day   | Days")
			fmt.Println("------------+------------+------------+------")
			for _, line := range r.Lines {
				fmt.Printf("  %-9s | %s | %s | %4d\n",
					line.Period,
					line.FirstDay.Format(layout),
					line.LastDay.Format(layout),
					line.Days)
			}
			fmt.Printf("\nTotal: %d period(s), %d day(s)\n", len(r.Lines), r.TotalDays)
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "Period granularity: year, quarter, month or day (default from config)")
	cmd.Args = cobra.ExactArgs(2)

	return cmd
}

// resolveRangeArgs turns the granularity flag (or config default) and two
// date arguments into typed values for the range/report commands.
func resolveRangeArgs(cfg *config.Config, granularity, startArg, endArg string) (period.Granularity, time.Time, time.Time, error) {
	g := cfg.Output.DefaultGranularity()
	if granularity != "" {
		var err error
		g, err = period.ParseGranularity(granularity)
		if err != nil {
			return 0, time.Time{}, time.Time{}, err
		}
	}

	start, err := dateutil.ParseDate(startArg)
	if err != nil {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := dateutil.ParseDate(endArg)
	if err != nil {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}

	return g, start, end, nil
}
