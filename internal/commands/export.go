package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// exporter and importer are implemented by both stores
type exporter interface {
	Export() ([]byte, error)
}

type importer interface {
	Import(data []byte) error
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export items, settings and achievements as JSON",
	Long: `Export the items tracker as a JSON document.
Without a file the document is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireFeature(app.cfg.Tracker.EnableExport, "export") {
			return
		}
		runExport(app.tracker, args)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace items, settings and achievements from a JSON export",
	Long: `Replace the items tracker state with an export document.
Every section present in the file replaces the current one; a file that
cannot be parsed changes nothing. Use - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireFeature(app.cfg.Tracker.EnableExport, "export") {
			return
		}
		if runImport(app.tracker, args[0]) {
			fmt.Printf("✅ Imported %d items\n", len(app.tracker.Items()))
		}
	},
}

func runExport(store exporter, args []string) {
	data, err := store.Export()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if len(args) == 0 || args[0] == "-" {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(args[0], data, 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", args[0], err)
		return
	}
	fmt.Printf("✅ Exported to %s\n", args[0])
}

func runImport(store importer, path string) bool {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return false
	}

	if err := store.Import(data); err != nil {
		fmt.Printf("Error: import failed: %v\n", err)
		return false
	}
	return true
}
