package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/columnar-core/tabular/internal/logging"
)

func main() {
	logger, closeFn := logging.Setup("tabular")
	defer closeFn()
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "tabular",
		Short: "Inspect and generate columnar table files",
		Long: "tabular ingests Arrow IPC files into validated, zero-copy column\n" +
			"aggregates and renders them, and generates sample files to play with.",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("quiet", false, "suppress lifecycle logging")

	addInspectCmd(root)
	addGenCmd(root)

	if err := root.Execute(); err != nil {
		closeFn()
		os.Exit(1)
	}
}
