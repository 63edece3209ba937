package main

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/memory"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/columnar-core/tabular/internal/arrowio"
	"github.com/columnar-core/tabular/internal/registry"
)

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}

func addInspectCmd(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Ingest an Arrow IPC file and print its contents",
		Args:  cobra.ExactArgs(1),
		Run:   runInspect,
	}
	cmd.Flags().StringSlice("columns", nil, "columns to read, by name")
	cmd.Flags().Int64("skip-rows", 0, "leading rows to skip")
	cmd.Flags().Int64("num-rows", 0, "max rows to read (0 = all)")
	cmd.Flags().Int("rows", 10, "max rows to print")
	root.AddCommand(cmd)
}

func runInspect(cmd *cobra.Command, args []string) {
	columns, _ := cmd.Flags().GetStringSlice("columns")
	skipRows, _ := cmd.Flags().GetInt64("skip-rows")
	numRows, _ := cmd.Flags().GetInt64("num-rows")
	printRows, _ := cmd.Flags().GetInt("rows")
	quiet, _ := cmd.Flags().GetBool("quiet")

	res, err := arrowio.ReadFile(args[0], &arrowio.ReadOptions{
		Columns:  columns,
		SkipRows: skipRows,
		NumRows:  numRows,
	})
	if err != nil {
		fatal("%v", errors.Wrap(err, "ingest failed"))
	}

	reg := registry.New()
	if !quiet {
		reg.AddObserver(registry.NewLoggingObserver(nil))
	}
	handle := reg.Register(res.Table)
	defer reg.Release(handle)

	fmt.Printf("table %s: %d columns, %d rows\n",
		handle, res.Table.NumColumns(), res.Table.NumRows())

	view, err := reg.View(handle)
	if err != nil {
		fatal("%v", errors.Wrap(err, "view projection failed"))
	}
	if err := renderView(os.Stdout, res.Names, view, printRows); err != nil {
		fatal("%v", err)
	}
}

func addGenCmd(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "gen <file>",
		Short: "Write a sample single-batch Arrow IPC file",
		Args:  cobra.ExactArgs(1),
		Run:   runGen,
	}
	cmd.Flags().Int("rows", 100, "number of rows to generate")
	root.AddCommand(cmd)
}

func runGen(cmd *cobra.Command, args []string) {
	n, _ := cmd.Flags().GetInt("rows")
	if n < 0 {
		fatal("rows must be >= 0, got %d", n)
	}

	mem := memory.NewGoAllocator()

	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	fb := array.NewFloat64Builder(mem)
	defer fb.Release()
	sb := array.NewStringBuilder(mem)
	defer sb.Release()

	for i := 0; i < n; i++ {
		ib.Append(int64(i))
		fb.Append(float64(i) / 10)
		sb.Append(fmt.Sprintf("row-%d", i))
	}

	ids := ib.NewInt64Array()
	defer ids.Release()
	scores := fb.NewFloat64Array()
	defer scores.Release()
	labels := sb.NewStringArray()
	defer labels.Release()

	err := arrowio.WriteFile(args[0],
		[]string{"id", "score", "label"},
		[]arrow.Array{ids, scores, labels},
	)
	if err != nil {
		fatal("%v", errors.Wrapf(err, "generating %s", args[0]))
	}
	fmt.Printf("wrote %d rows to %s\n", n, args[0])
}
