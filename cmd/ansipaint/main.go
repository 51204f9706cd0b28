package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"ansipaint/canvas"
	"ansipaint/config"
	"ansipaint/format"
	"ansipaint/i18n"
	"ansipaint/ui"
)

func main() {
	var (
		colorStr   string
		configPath string
		readOnly   bool
		langBase   string
		langTrans  string
	)

	flag.StringVar(&colorStr, "c", "", "Color depth: 'auto', 'true', or '256'")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.BoolVar(&readOnly, "ro", false, "Open in view-only mode")
	flag.StringVar(&langBase, "lang-base", "", "Base RC file for translation")
	flag.StringVar(&langTrans, "lang", "", "Translated RC file")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() > 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if colorStr != "" {
		cfg.UI.ColorDepth = colorStr
	}
	colorMode := cfg.ColorMode()

	var cat *i18n.Catalog
	if langBase != "" && langTrans != "" {
		cat, err = i18n.LoadCatalog(langBase, langTrans)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading translation: %v\n", err)
			os.Exit(1)
		}
	}

	var doc *canvas.Canvas
	path := ""
	if flag.NArg() == 1 {
		path = flag.Arg(0)
		doc, err = format.LoadFile(path, format.LoadOptions{
			ImageWidth: cfg.Files.ImageImportWidth,
			ColorMode:  colorMode,
		})
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !readOnly {
				// A fresh document saved under the given name later.
				doc = nil
			} else {
				fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
				os.Exit(1)
			}
		}
		if format.Detect(path) == format.KindImage {
			// Imported raster images are new unsaved documents.
			path = ""
		}
	}

	app := ui.NewApp(cfg, cat, colorMode, doc, path, readOnly)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

const usageText = `ansipaint - terminal ANSI art editor

Usage: ansipaint [options] [file]

Opens .ans/.ansi documents, plain text, or imports PNG/JPEG/GIF images.

Options:
  -c string        Color depth: 'auto', 'true', or '256'
  -config string   Config file path (default $XDG_CONFIG_HOME/ansipaint/config.toml)
  -ro              Open in view-only mode
  -lang string     Translated RC file (with -lang-base)
  -lang-base string
                   Base RC file for translation

Keys:
  Ctrl+N/O/S       New / Open / Save          Ctrl+Z/Y   Undo / Redo
  Ctrl+X/C/V       Cut / Copy / Paste         Ctrl+A     Select all
  Ctrl+E           Canvas size                Del        Clear selection
  F10, Alt+letter  Menus                      Ctrl+Q     Quit
  Mouse            Left paints with the foreground color; right button on
                   the palette sets the background color.
`
