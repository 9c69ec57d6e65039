// Package minify is the public entry point for processing Lua sources
// with a configured rule pipeline.
package minify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/minlua/minlua/internal"
	tt "github.com/minlua/minlua/internal/types"
)

// ProcessEngine is the part of the engine the file processors need.
type ProcessEngine interface {
	ProcessSource(source []byte) (string, error)
	ProcessFile(filename string) (tt.Result, error)
}

// New builds an engine from a configuration file path. An empty path
// selects the default pipeline.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(config.RuleInstances()), nil
}

// ProcessFile processes a single file through the engine.
func ProcessFile(engine ProcessEngine, filePath string) (tt.Result, error) {
	return engine.ProcessFile(filePath)
}

// ProcessFiles processes every given path, recursing into directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine ProcessEngine,
	paths []string,
	processor func(ProcessEngine, string) (tt.Result, error),
) ([]tt.Result, error) {
	var allResults []tt.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}
	return allResults, nil
}

// ProcessPath processes one file, or every Lua file under a directory
// with a CPU-bounded worker pool and a progress bar.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine ProcessEngine,
	path string,
	processor func(ProcessEngine, string) (tt.Result, error),
) ([]tt.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !internal.HasLuaExtension(path) {
			return nil, nil
		}
		result, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []tt.Result{result}, nil
	}

	var files []string
	filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && internal.HasLuaExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	resultChan := make(chan tt.Result, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			wg.Add(1)
			go func(fp string) {
				defer wg.Done()
				defer func() { <-sem }()

				result, err := processor(engine, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
				} else {
					resultChan <- result
				}
				bar.Add(1)
			}(filePath)
		}
	}
	wg.Wait()
	close(resultChan)
	close(errorChan)

	if err := <-errorChan; err != nil {
		return nil, err
	}
	results := make([]tt.Result, 0, len(files))
	for result := range resultChan {
		results = append(results, result)
	}
	fmt.Println()
	return results, nil
}
