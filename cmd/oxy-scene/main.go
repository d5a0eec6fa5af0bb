// Command oxy-scene opens the interactive scene editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-scene/engine"
	"github.com/Carmen-Shannon/oxy-scene/engine/config"
	"github.com/Carmen-Shannon/oxy-scene/engine/editor"
	"github.com/Carmen-Shannon/oxy-scene/engine/input"
	"github.com/Carmen-Shannon/oxy-scene/engine/loader"
	"github.com/Carmen-Shannon/oxy-scene/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/scene"
	"github.com/Carmen-Shannon/oxy-scene/engine/window"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "path to a YAML or TOML editor config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("oxy-scene: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("[Main] %s not found, using defaults", configPath)
		cfg = config.Default()
	case err != nil:
		return err
	}

	presentMode, err := renderer.ParsePresentMode(cfg.Renderer.PresentMode)
	if err != nil {
		return err
	}
	msaa, err := renderer.ParseMSAA(cfg.Renderer.MSAA)
	if err != nil {
		return err
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	w := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("[Main] window close: %v", err)
		}
	}()

	r := renderer.NewRenderer(renderer.BackendTypeWGPU, w,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.ForceSoftware),
		renderer.WithClearColor(config.Color(cfg.Renderer.ClearColor)),
	)
	defer r.Release()

	// ── Config reload ───────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var editorOptions []editor.EditorBuilderOption
	if updates, err := config.Watch(ctx, configPath); err != nil {
		log.Printf("[Main] config reload disabled: %v", err)
	} else {
		editorOptions = append(editorOptions, editor.WithConfigUpdates(updates))
	}

	// ── Editor ──────────────────────────────────────────────────────────
	in := input.NewInput()
	sc := scene.NewSceneEditor(scene.WithHighlightColor(config.Color(cfg.Editor.HighlightColor)))
	ed := editor.NewEditor(r, in, append(editorOptions,
		editor.WithConfig(cfg),
		editor.WithScene(sc),
		editor.WithCloser(w),
		editor.WithLoader(loader.NewLoader(loader.BackendTypeOBJ,
			loader.WithColor(config.Color(cfg.Editor.DefaultColor)),
			loader.WithWorkers(cfg.Editor.PreloadWorkers),
		)),
	)...)
	ed.Camera().SetAspect(float32(w.Width()) / float32(w.Height()))

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithApp(ed),
		engine.WithWindow(w),
		engine.WithInput(in),
		engine.WithRenderer(r),
		engine.WithCamera(ed.Camera()),
		engine.WithFrameLimit(float64(cfg.Renderer.FrameLimit)),
		engine.WithProfiling(cfg.Renderer.Profile,
			profiler.WithCounter("objects", func() int { return sc.Stats().Objects }),
			profiler.WithCounter("vertices", func() int { return sc.Stats().Vertices }),
			profiler.WithCounter("indices", func() int { return sc.Stats().Indices }),
			profiler.WithCounter("visible", func() int { return sc.Stats().Visible }),
		),
	)

	fmt.Println("oxy-scene")
	fmt.Println("  add:       B box  C cylinder  S sphere  G geosphere  P plane  Q quad  1-5 models")
	fmt.Println("  select:    Tab next  Shift none  Delete remove")
	fmt.Println("  transform: T+arrows/W/S move  Ctrl+E+=/- scale  Ctrl+X/Y/Z+R rotate")
	fmt.Println("  view:      left drag orbit  right drag zoom  V top view  R spin  Esc quit")

	return eng.Run()
}
