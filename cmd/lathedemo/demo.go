package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/blueprint"
	"github.com/gogpu/lathe/preview"
)

// previewSize is the edge length of each outline panel in the PNG.
const previewSize = 256

// demo holds the scene for one run. All fields are touched only from the
// goroutine that calls start and watch.
type demo struct {
	configPath string
	objPath    string
	pngPath    string
	out        io.Writer

	bp     *blueprint.Blueprint
	bundle *blueprint.Bundle
}

func (d *demo) config() (*Config, error) {
	if d.configPath == "" {
		return defaultConfig(), nil
	}
	return loadConfig(d.configPath)
}

// start builds the scene from the config and writes the outputs once.
func (d *demo) start() error {
	cfg, err := d.config()
	if err != nil {
		return err
	}
	profile, err := cfg.BuildProfile()
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	perimeter, err := cfg.BuildPerimeter()
	if err != nil {
		return fmt.Errorf("perimeter: %w", err)
	}

	d.bp = blueprint.New(cfg.Options()...)
	d.bundle, err = blueprint.NewBundle(d.bp,
		blueprint.NewEditor(profile),
		blueprint.NewEditor(perimeter),
		cfg.Mesh.Y)
	if err != nil {
		return err
	}
	return d.write()
}

// reload pushes a changed config through the editors. The bundle regenerates
// the existing mesh in place. Lattice resolution and scales are fixed at
// start.
func (d *demo) reload() error {
	cfg, err := d.config()
	if err != nil {
		return err
	}
	profile, err := cfg.BuildProfile()
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	perimeter, err := cfg.BuildPerimeter()
	if err != nil {
		return fmt.Errorf("perimeter: %w", err)
	}
	if err := (blueprint.Spec{Curve: profile, Revolve: perimeter}).Validate(); err != nil {
		return err
	}
	d.bundle.Curve.Replace(profile)
	d.bundle.Revolve.Replace(perimeter)
	return d.write()
}

func (d *demo) write() error {
	g := d.bundle.Mesh.Obj.Geometry
	if d.objPath != "" {
		if err := writeFile(d.objPath, g.WriteOBJ); err != nil {
			return err
		}
	}
	if d.pngPath != "" {
		img := outlines(d.bundle.Curve.Shape(), d.bundle.Revolve.Shape())
		if err := writeFile(d.pngPath, func(w io.Writer) error { return png.Encode(w, img) }); err != nil {
			return err
		}
	}

	lo, hi := g.Bounds()
	p := message.NewPrinter(language.English)
	p.Fprintf(d.out, "%d vertices, %d triangles, height %.3f, width %.3f\n",
		len(g.Positions), len(g.Indices)/3, hi[1]-lo[1], hi[0]-lo[0])
	return nil
}

// watch reloads on every write to the config file until ctx is done. Events
// arrive on the watcher's goroutine and are handled here so that shapes are
// only mutated from one goroutine.
func (d *demo) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(d.configPath)); err != nil {
		return fmt.Errorf("watch %s: %w", d.configPath, err)
	}
	target := filepath.Clean(d.configPath)
	log := lathe.Logger()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := d.reload(); err != nil {
				log.Warn("lathedemo: reload failed", "config", d.configPath, "err", err)
				continue
			}
			log.Info("lathedemo: reloaded", "config", d.configPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("lathedemo: watcher error", "err", err)
		}
	}
}

// outlines renders the profile and perimeter side by side, white on black.
func outlines(profile, perimeter lathe.Shape) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 2*previewSize, previewSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	white := image.NewUniform(color.White)
	left := preview.Outline(profile, previewSize, previewSize, 2)
	right := preview.Outline(perimeter, previewSize, previewSize, 0)
	draw.DrawMask(img, left.Bounds(), white, image.Point{}, left, image.Point{}, draw.Over)
	draw.DrawMask(img, right.Bounds().Add(image.Pt(previewSize, 0)), white, image.Point{}, right, image.Point{}, draw.Over)
	return img
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
