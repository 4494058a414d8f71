// Command motherboard opens the interactive motherboard résumé: a 3D board whose
// components open a panel with a résumé section when clicked.
package main

import (
	"os"

	"motherboard/internal/animate"
	"motherboard/internal/board"
	"motherboard/internal/commands"
	"motherboard/internal/config"
	"motherboard/internal/content"
	"motherboard/internal/debug"
	"motherboard/internal/fonts"
	"motherboard/internal/graphics"
	"motherboard/internal/logger"
	"motherboard/internal/pick"
	"motherboard/internal/scene"
	"motherboard/internal/stats"
	"motherboard/internal/terminal"
	"motherboard/internal/texture"
	"motherboard/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.New()
	}
	log := logger.New(cfg.LogFile)
	if cfgErr != nil {
		log.Warn("config rejected, using defaults", "err", cfgErr)
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		log.Warn("bad log level", "err", err)
	}
	st := stats.New()

	reg, err := content.Load()
	if err != nil {
		log.Error("load content", "err", err)
		os.Exit(1)
	}

	world := board.Assemble(reg, texture.NewGenerator(cfg.Seed), board.DefaultOptions())
	st.Scene(world.Len(), world.Meshes())
	log.Info("scene assembled", "entries", world.Len(), "meshes", world.Meshes(), "fans", len(world.Fans()), "seed", cfg.Seed)

	scn := scene.New(world, cfg.FieldOfView, cfg.Width, cfg.Height)
	engine := ui.New()
	panel := ui.NewPanel(engine)
	title := reg.Title()
	ui.NewTitle(engine, title.Product, title.Version, title.Hint)

	dbg := debug.New(func() string {
		snap, err := st.Snapshot()
		if err != nil {
			return ""
		}
		return snap.String()
	})
	dbg.SetShowFPS(cfg.ShowFPS)
	dbg.SetShowMemAlloc(cfg.ShowMemAlloc)
	dbg.SetShowStats(cfg.ShowStats)

	v := &viewer{overlay: dbg, log: log, world: world, scene: scn, panel: panel}
	ctrl := pick.NewController(world, v, st)
	v.ctrl = ctrl

	cmds := commands.NewRegistry()
	commands.RegisterViewer(cmds, v, log.Log)
	term := terminal.New(log, cmds)
	term.OnCommand = st.Command

	anim := animate.New(world, &scn.Camera, cfg.Animation())
	var clock graphics.Clock

	update := func() {
		term.Update()
		if !term.IsOpen() {
			mouse := rl.GetMousePosition()
			ctrl.Move(pick.FromScreen(mouse.X, mouse.Y, float32(scn.Viewport.Width), float32(scn.Viewport.Height)))
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				if hit, ok := ctrl.Click(scn.Camera, scn.Aspect()); ok {
					log.Debug("pick", "type", world.Entry(hit.Entry).Type, "mesh", hit.Object.Name, "distance", hit.Distance)
				}
			}
		}
		anim.Step(clock)
	}
	draw2D := func() {
		engine.Draw()
		dbg.Draw()
		term.Draw()
		st.Frame()
	}

	graphics.Run(graphics.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Title:      cfg.Title,
		TargetFPS:  cfg.TargetFPS,
		MSAA:       cfg.MSAA,
		Background: scene.Background,
		OnInit: func() {
			engine.UseFontMetrics()
			if cfg.UIFont == "" {
				return
			}
			path, err := fonts.Resolve(cfg.FontDir, cfg.UIFont)
			if err == nil {
				err = engine.LoadFont(path)
			}
			if err != nil {
				log.Warn("ui font unavailable, using default", "font", cfg.UIFont, "err", err)
				return
			}
			term.SetFont(engine.Font())
			dbg.SetFont(engine.Font())
			log.Info("ui font loaded", "path", path)
		},
		OnClose: func() {
			engine.Unload()
			scn.Unload()
		},
		OnResize: func(w, h int) {
			scn.Resize(w, h)
			log.Debug("viewport resized", "width", w, "height", h, "aspect", scn.Aspect())
		},
	}, update, scn.Draw, draw2D)
}
