// Command lathedemo builds a surface of revolution from a sketch description.
//
// It writes the mesh as Wavefront OBJ and a PNG with the profile and perimeter
// outlines. With -watch it keeps running and regenerates both files whenever
// the config file changes, reusing the same mesh object.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/lathe"
)

func main() {
	var (
		config  = flag.String("config", "", "TOML sketch description (built-in vase if empty)")
		objPath = flag.String("obj", "lathe.obj", "OBJ output file")
		pngPath = flag.String("png", "", "PNG outline preview output file")
		watch   = flag.Bool("watch", false, "regenerate outputs when the config file changes")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	lathe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *watch && *config == "" {
		log.Fatal("-watch needs -config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &demo{
		configPath: *config,
		objPath:    *objPath,
		pngPath:    *pngPath,
		out:        os.Stdout,
	}
	if err := d.start(); err != nil {
		log.Fatalf("lathedemo: %v", err)
	}
	if *watch {
		if err := d.watch(ctx); err != nil {
			log.Fatalf("lathedemo: %v", err)
		}
	}
}
