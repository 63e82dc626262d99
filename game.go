package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/config"
	"github.com/milk9111/bonecollector/ecs"
	"github.com/milk9111/bonecollector/ecs/component"
	"github.com/milk9111/bonecollector/ecs/entity"
	"github.com/milk9111/bonecollector/ecs/render"
	"github.com/milk9111/bonecollector/ecs/system"
	"github.com/milk9111/bonecollector/prefabs"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	registry  *animation.Registry
	scheduler *ecs.Scheduler
	renderer  *render.RenderSystem
	hud       *HUD
	watcher   *prefabs.Watcher

	skelly *prefabs.SkellySpec
	parts  *prefabs.PartsSpec
	player ecs.Entity

	log *zap.Logger
}

func NewGame(cfg config.Config, log *zap.Logger) (*Game, error) {
	skelly, err := prefabs.LoadSkellySpec()
	if err != nil {
		return nil, err
	}
	parts, err := prefabs.LoadPartsSpec()
	if err != nil {
		return nil, err
	}
	level, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}

	formName := cfg.StartForm
	if formName == "" {
		formName = skelly.StartForm
	}
	form, err := component.ParseForm(formName)
	if err != nil {
		return nil, fmt.Errorf("start form: %w", err)
	}

	g := &Game{
		debug:    cfg.Debug,
		world:    ecs.NewWorld(),
		registry: animation.NewRegistry(),
		renderer: render.NewRenderSystem(level.Camera.Scale, level.TileSize, cfg.Debug),
		hud:      NewHUD(),
		skelly:   skelly,
		parts:    parts,
		log:      log,
	}

	if err := g.spawn(level, form); err != nil {
		return nil, err
	}
	g.scheduler = g.newScheduler(time.Second / time.Duration(cfg.TPS))

	if cfg.WatchPrefabs {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			return nil, fmt.Errorf("watch prefabs: %w", err)
		}
		g.watcher = watcher
	}

	return g, nil
}

func (g *Game) spawn(level *prefabs.LevelSpec, form component.Form) error {
	w := g.world

	tiles, err := entity.NewFloor(w, level)
	if err != nil {
		return err
	}
	if _, _, err := entity.NewGate(w, level); err != nil {
		return err
	}
	if _, err := entity.NewEndZone(w, level); err != nil {
		return err
	}
	if err := entity.RegisterPartCatalogs(w, g.parts); err != nil {
		return err
	}
	if _, err := entity.NewBonePack(w, g.parts); err != nil {
		return err
	}
	player, err := entity.NewSkelly(w, g.skelly, form)
	if err != nil {
		return err
	}
	if _, err := entity.NewCamera(w, level, player); err != nil {
		return err
	}
	g.player = player

	g.log.Info("level spawned",
		zap.String("level", level.Name),
		zap.Int("tiles", tiles),
		zap.Stringer("form", form),
	)
	return nil
}

func (g *Game) newScheduler(step time.Duration) *ecs.Scheduler {
	s := ecs.NewScheduler()

	s.Add(ecs.PhaseEarly, system.NewSceneLoaderSystem(g.registry, g.log))
	s.Add(ecs.PhaseEarly, system.NewAnimationLinkSystem(g.log))

	s.Add(ecs.PhaseMain, render.NewInputSystem())
	s.Add(ecs.PhaseMain, system.NewPlayerControllerSystem())
	s.Add(ecs.PhaseMain, system.NewAnimationDispatchSystem(g.registry, g.log))
	s.Add(ecs.PhaseMain, system.NewBonePackSystem(g.parts, g.log))
	s.Add(ecs.PhaseMain, system.NewPickupCollectSystem(g.log))
	s.Add(ecs.PhaseMain, system.NewGateSystem(g.log))
	s.Add(ecs.PhaseMain, system.NewEndZoneSystem(g.log))
	if g.debug {
		s.Add(ecs.PhaseMain, system.NewDebugPartsSystem(g.parts, g.log))
	}
	s.Add(ecs.PhaseMain, system.NewPhysicsSystem(step, g.log))
	s.Add(ecs.PhaseMain, system.NewFormProgressionSystem(g.skelly, g.debug, g.log))
	s.Add(ecs.PhaseMain, system.NewFormChangeSystem(g.registry, g.skelly, g.log))

	s.Add(ecs.PhaseLate, system.NewAnimationCatalogSystem(g.registry, g.log))
	s.Add(ecs.PhaseLate, system.NewAnimationPlayerSystem(step))
	s.Add(ecs.PhaseLate, system.NewAnimationTimerSystem(step, g.log))
	s.Add(ecs.PhaseLate, system.NewCameraSystem())

	return s
}

func (g *Game) Update() error {
	g.frames++

	g.reloadPrefabs()
	g.scheduler.Update(g.world)
	g.hud.Sync(g.world, g.player)

	return nil
}

// reloadPrefabs turns edited prefab files into catalog reloads.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}

	for _, name := range g.watcher.Poll() {
		var (
			catalogs []*animation.Catalog
			err      error
		)
		switch name {
		case prefabs.SkellyFile:
			var spec *prefabs.SkellySpec
			if spec, err = prefabs.LoadSkellySpec(); err == nil {
				g.skelly = spec
				archetype := animation.SkellyOnlyHead
				if c, ok := ecs.Get(g.world, g.player, component.CreatureComponent.Kind()); ok {
					archetype = c.Archetype
				}
				catalogs, err = spec.Catalogs(uint64(g.player), archetype)
			}
		case prefabs.PartsFile:
			var spec *prefabs.PartsSpec
			if spec, err = prefabs.LoadPartsSpec(); err == nil {
				g.parts = spec
				catalogs, err = spec.Catalogs()
			}
		default:
			g.log.Debug("prefab change needs a restart", zap.String("prefab", name))
			continue
		}
		if err != nil {
			g.log.Warn("reload prefab", zap.String("prefab", name), zap.Error(err))
			continue
		}
		for _, c := range catalogs {
			ecs.Send(g.world, component.ReloadCatalogEvent, component.ReloadCatalog{Catalog: c})
		}
		g.log.Info("prefab reloaded", zap.String("prefab", name), zap.Int("catalogs", len(catalogs)))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Catalogs: %d", g.frames, ebiten.ActualFPS(), g.registry.Len()), 0, baseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
