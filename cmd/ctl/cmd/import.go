package cmd

import (
	"fmt"

	"characterdex/internal/importer"
	"characterdex/internal/infrastructure/storage/sqlite"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	dumpPath    string
	showSkipped bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Импортировать MySQL-дамп персонажей в SQLite",
	Long: `Читает дамп построчно: CREATE/DROP TABLE переводятся в диалект SQLite
и выполняются сразу, кортежи INSERT вставляются транзакциями по 1000 строк.

Импорт не идемпотентен, если дамп сам не пересоздает таблицу.`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, _ []string) error {
	path := dumpPath
	if path == "" {
		path = cfg.Import.DumpPath
	}

	fs := afero.NewOsFs()
	if ok, _ := afero.Exists(fs, path); !ok {
		return fmt.Errorf("SQL dump file not found: %s", path)
	}

	w := out(cmd)
	fmt.Fprintf(w, "Setting up database at %s...\n", cfg.DB.Path)

	storage, err := sqlite.New(cmd.Context(), cfg.DB.Path, log)
	if err != nil {
		return err
	}
	defer storage.Close()

	fmt.Fprintln(w, "Reading SQL file...")
	translator := importer.New(storage, log,
		importer.WithFs(fs),
		importer.WithProgress(importer.DefaultProgressEvery, func(lines int) {
			fmt.Fprintf(w, "\rProcessed %d lines...", lines)
		}),
	)

	report, err := translator.ImportFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.GreenString("Import completed!"))
	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report *importer.Report) {
	w := out(cmd)

	fmt.Fprintf(w, "Lines read: %d, tuples inserted: %d/%d in %d batches\n",
		report.Lines, report.Inserted, report.Tuples, report.Batches)

	for _, f := range report.SchemaFailures {
		fmt.Fprintln(w, color.YellowString("Schema error at line %d: %v", f.Line, f.Err))
	}

	if n := len(report.Skipped); n > 0 {
		fmt.Fprintln(w, color.YellowString("Skipped tuples: %d", n))
		if showSkipped {
			for _, s := range report.Skipped {
				fmt.Fprintf(w, "  line %d, id %s: %v\n", s.Line, s.ID, s.Err)
			}
		}
	}

	if report.RowCount < 0 {
		fmt.Fprintln(w, color.YellowString("Could not verify row count: %v", report.CountErr))
		return
	}
	fmt.Fprintf(w, "Total records in '%s' table: %d\n", importer.TargetTable, report.RowCount)
}

func init() {
	importCmd.Flags().StringVar(&dumpPath, "dump", "", "путь к дампу (по умолчанию DUMP_PATH)")
	importCmd.Flags().BoolVar(&showSkipped, "show-skipped", false, "перечислить пропущенные кортежи")
}
