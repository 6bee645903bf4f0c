package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - seed:   Load the default catalog into an empty store
// - import: Append products from an .xlsx spreadsheet
// - export: Write the catalog to an .xlsx file or to the export bucket

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	importFile := importCmd.String("file", "", "Spreadsheet (.xlsx) to import")

	exportOutput := exportCmd.String("output", "", "Local .xlsx file to write")
	exportBucket := exportCmd.String("bucket", "", "Blob bucket URL, overrides export.bucketUrl")
	exportKey := exportCmd.String("key", "", "Object key inside the export bucket")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := catalogFlags{
		Seed: seedFlags{
			cmd: seedCmd,
		},
		Import: importFlags{
			cmd:  importCmd,
			file: importFile,
		},
		Export: exportFlags{
			cmd:    exportCmd,
			output: exportOutput,
			bucket: exportBucket,
			key:    exportKey,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type catalogFlags struct {
	Seed   seedFlags
	Import importFlags
	Export exportFlags
}

type seedFlags struct {
	cmd *flag.FlagSet
}

type importFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type exportFlags struct {
	cmd    *flag.FlagSet
	output *string
	bucket *string
	key    *string
}

func runSubcommand(ctx context.Context, flags *catalogFlags) error {
	switch os.Args[1] {
	case "seed":
		return handleSeed(ctx, flags)
	case "import":
		return handleImport(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleSeed(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse seed flags")
	}

	return runSeed(ctx)
}

func handleImport(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.file == "" {
		return errors.New("--file flag is required for import command")
	}

	return runImport(ctx, *flags.Import.file)
}

func handleExport(ctx context.Context, flags *catalogFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	output, key := *flags.Export.output, *flags.Export.key
	if output == "" && key == "" {
		return errors.New("either --output or --key is required for export command")
	}
	if output != "" && key != "" {
		return errors.New("--output and --key cannot be used together")
	}

	if output != "" {
		return runExportFile(ctx, output)
	}

	return runExportBucket(ctx, *flags.Export.bucket, key)
}

func printUsage() {
	fmt.Println("Usage: catalog-cli <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  seed      Load the default catalog when the store is empty")
	fmt.Println("  import    Append products from an .xlsx spreadsheet")
	fmt.Println("  export    Write the catalog as an .xlsx spreadsheet")
	fmt.Println("")
	fmt.Println("Use 'catalog-cli <command> -h' for more information about a command.")
}
