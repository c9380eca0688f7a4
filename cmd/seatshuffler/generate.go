package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"SeatShuffler/internal/board"
	"SeatShuffler/internal/seating"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type layoutFlags struct {
	className string
	students  int
	columns   int
	depths    string
	seed      uint64
	seeded    bool
}

func (f layoutFlags) request() (seating.SeatLayoutRequest, error) {
	depths, err := parseDepths(f.depths)
	if err != nil {
		return seating.SeatLayoutRequest{}, err
	}
	return seating.SeatLayoutRequest{
		ClassName:      f.className,
		StudentCount:   f.students,
		ColumnCount:    f.columns,
		PerColumnDepth: depths,
	}, nil
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.className, "name", "n", "", "Class name shown in the title")
	cmd.Flags().IntVarP(&f.students, "students", "s", 36, "Number of students (1-100)")
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 6, "Number of columns (1-10)")
	cmd.Flags().StringVar(&f.depths, "depths", "", "Seats per column, left to right, e.g. 6,6,7,6,6,6")
}

// resolve lets --depths alone define the layout: counts the user did not
// set explicitly are derived from it.
func (f *layoutFlags) resolve(cmd *cobra.Command) {
	if strings.TrimSpace(f.depths) == "" {
		return
	}
	if !cmd.Flags().Changed("students") {
		f.students = 0
	}
	if !cmd.Flags().Changed("columns") {
		f.columns = 0
	}
}

var genFlags layoutFlags
var outputFile string

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a shuffled seating plan",
		Long: `Generate a shuffled seating plan and print it, or write a printable
HTML roster.

Examples:
  seatshuffler generate -s 36 -c 6
  seatshuffler generate -s 10 -c 3 --depths 4,3,3 --seed 7
  seatshuffler generate -n "Year 9" -s 28 -c 5 -o roster.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			genFlags.resolve(cmd)
			genFlags.seeded = cmd.Flags().Changed("seed")
			return runGenerate(cmd.OutOrStdout(), genFlags, outputFile, logger)
		},
	}
	genFlags.register(genCmd)
	genCmd.Flags().Uint64Var(&genFlags.seed, "seed", 0, "Seed for a reproducible shuffle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write an HTML roster to this file")
	rootCmd.AddCommand(genCmd)
}

func runGenerate(w io.Writer, f layoutFlags, output string, logger *zap.Logger) error {
	req, err := f.request()
	if err != nil {
		return err
	}
	svc := seating.NewSeatingService(nil, logger)

	var opts []seating.GenerateOption
	if f.seeded {
		opts = append(opts, seating.WithSeed(f.seed))
	}
	plan, err := svc.Generate(req, opts...)
	if err != nil {
		return err
	}
	b := board.New(plan.Grid, board.DefaultGeometry())

	if output == "" {
		fmt.Fprintf(w, "Seats per column: %s\n\n", joinInts(plan.Request.PerColumnDepth))
		fmt.Fprint(w, b.Format())
		return nil
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	title := strings.TrimSpace(plan.Request.ClassName)
	if title == "" {
		title = "Seating plan"
	}
	if err := b.WriteRoster(file, title); err != nil {
		return err
	}
	fmt.Fprintf(w, "Roster written to %s\n", output)
	return nil
}

// parseDepths parses a comma separated list of seats per column.
func parseDepths(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	depths := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid seats per column %q: %w", part, err)
		}
		depths = append(depths, v)
	}
	return depths, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
