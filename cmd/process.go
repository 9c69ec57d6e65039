package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minlua/minlua/formatter"
	"github.com/minlua/minlua/minify"
	tt "github.com/minlua/minlua/internal/types"
)

var (
	inPlace bool
	outDir  string
)

var processCmd = &cobra.Command{
	Use:   "process [paths...]",
	Short: "Minify Lua files through the configured rule pipeline",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := minify.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		runProcess(ctx, logger, engine, args)
	},
}

func init() {
	processCmd.Flags().BoolVarP(&inPlace, "write", "w", false, "Rewrite the input files in place")
	processCmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory to write processed files into")
}

func runProcess(ctx context.Context, logger *zap.Logger, engine minify.ProcessEngine, paths []string) {
	results, err := minify.ProcessFiles(ctx, logger, engine, paths, minify.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	if !inPlace && outDir == "" {
		// print the processed sources to stdout
		for _, result := range results {
			fmt.Println(result.Output)
		}
		return
	}

	for _, result := range results {
		destination := destinationPath(result)
		if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
			logger.Error("Error creating output directory", zap.Error(err))
			os.Exit(1)
		}
		if err := os.WriteFile(destination, []byte(result.Output), 0o644); err != nil {
			logger.Error("Error writing output file", zap.String("file", destination), zap.Error(err))
			os.Exit(1)
		}
	}
	fmt.Print(formatter.GenerateSummary(results))
}

func destinationPath(result tt.Result) string {
	if inPlace {
		return result.Filename
	}
	return filepath.Join(outDir, filepath.Base(result.Filename))
}

// watchOutputPath maps a source file to its watch-mode destination,
// leaving already-processed files alone so the watcher never chases
// its own writes.
func watchOutputPath(path string) string {
	if strings.HasSuffix(path, ".min.lua") {
		return path
	}
	return strings.TrimSuffix(path, ".lua") + ".min.lua"
}
