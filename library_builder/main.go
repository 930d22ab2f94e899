package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mekane/Grimdark-Future-Rules-Parser/armybook"
)

func main() {
	outDir := flag.String("out", "library", "Directory the unit files are written to")
	combineMode := flag.Bool("combine", false, "Combine two units: input1.yaml input2.yaml output.yaml")
	verbose := flag.Bool("verbose", false, "Log every parsed unit")
	showHelp := flag.Bool("help", false, "Show usage information")
	flag.Parse()

	if *showHelp {
		fmt.Println("Library Builder - Grimdark Future unit library")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  Build library files from statblock books:")
		fmt.Println("    go run ./library_builder army.txt [more.txt...]")
		fmt.Println()
		fmt.Println("  Combine two existing library units:")
		fmt.Println("    go run ./library_builder --combine input1.yaml input2.yaml output.yaml")
		fmt.Println()
		return
	}

	logger := zap.NewExample()
	if !*verbose {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	defer logger.Sync()

	args := flag.Args()
	if *combineMode {
		if len(args) != 3 {
			logger.Fatal("combine mode requires exactly 3 arguments: input1.yaml input2.yaml output.yaml")
		}
		path, err := combineUnitFiles(*outDir, args[0], args[1], args[2])
		if err != nil {
			logger.Fatal("error combining units", zap.Error(err))
		}
		logger.Info("combined units written", zap.String("file", path))
		return
	}

	if len(args) == 0 {
		logger.Fatal("no book files given, see --help")
	}
	written, err := buildLibrary(logger, *outDir, args)
	logger.Info("library built", zap.Int("units", written), zap.String("dir", *outDir))
	if err != nil {
		os.Exit(1)
	}
}

// buildLibrary assembles every book and writes one file per unit. Lines that
// fail to parse are logged and skipped; the returned error aggregates them.
func buildLibrary(logger *zap.Logger, outDir string, books []string) (int, error) {
	assembler := armybook.NewAssembler(logger)
	var (
		written int
		errs    error
	)

	for _, file := range books {
		book, err := assembler.AssembleFile(file)
		if book == nil {
			logger.Error("error reading book", zap.String("file", file), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		for _, e := range multierr.Errors(err) {
			logger.Error("skipped line", zap.String("file", file), zap.Error(e))
		}
		errs = multierr.Append(errs, err)

		for _, u := range book.Units {
			path, err := armybook.SaveUnit(outDir, book.NewEntry(u))
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", u.Name, err))
				continue
			}
			logger.Debug("unit written", zap.String("unit", u.Name), zap.String("file", path))
			written++
		}
	}
	return written, errs
}

func combineUnitFiles(outDir, unit1Path, unit2Path, outputPath string) (string, error) {
	unit1, err := armybook.LoadUnit(filepath.Join(outDir, unit1Path))
	if err != nil {
		return "", err
	}
	unit2, err := armybook.LoadUnit(filepath.Join(outDir, unit2Path))
	if err != nil {
		return "", err
	}

	combined := armybook.Combine(unit1, unit2)
	path, err := armybook.SaveUnit(outDir, combined)
	if err != nil {
		return "", fmt.Errorf("error writing combined unit: %w", err)
	}

	if want := filepath.Join(outDir, outputPath); path != want {
		if err := os.Rename(path, want); err != nil {
			return "", err
		}
		path = want
	}
	return path, nil
}
