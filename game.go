package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/uifx/common"
	"github.com/milk9111/uifx/ecs"
	"github.com/milk9111/uifx/ecs/system"
	"github.com/milk9111/uifx/effect"
	"github.com/milk9111/uifx/prefabs"
	"github.com/milk9111/uifx/script"
)

var background = color.RGBA{R: 0x1c, G: 0x1f, B: 0x26, A: 0xff}

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	animator  *effect.Animator
	runtime   *script.Runtime
	attention *system.AttentionSystem

	controls *ebitenui.UI
	watcher  *prefabs.Watcher

	sceneName string
	scene     prefabs.SceneSpec
	clipboard bool
	status    string
}

func NewGame(sceneName string, debug, watch bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		world:     ecs.NewWorld(),
		animator:  effect.New(nil),
		sceneName: sceneName,
	}
	if debug {
		g.animator.Manager().Logf = log.Printf
	}

	g.runtime = script.NewRuntime(g.animator, system.WidgetHost(g.world))
	g.attention = system.NewAttentionSystem(g.animator)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewScriptSystem(g.runtime),
		g.attention,
		system.NewAnimationSystem(g.animator),
		system.NewRenderSystem(),
	)

	if err := g.loadScene(); err != nil {
		return nil, err
	}
	g.controls = NewControlUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.controls.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyScene()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.loadScene(); err != nil {
			g.setStatus("reload failed: %v", err)
		}
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.scheduler.Draw(g.world, screen)
	g.controls.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f  effects: %d  timelines: %d", ebiten.ActualFPS(), g.animator.Manager().Len(), g.animator.Clock().Len())
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	if g.debug {
		log.Print(g.status)
	}
}

func (g *Game) copyScene() {
	if !g.clipboard {
		g.setStatus("clipboard unavailable")
		return
	}
	data, err := prefabs.Load("scenes/" + g.sceneName + ".yaml")
	if err != nil {
		g.setStatus("copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("copied scene %s to the clipboard", g.sceneName)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Events:
			g.applyChange(change)
		case err := <-g.watcher.Errors:
			log.Printf("prefabs: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeEffect:
		name := trimExt(change.Name)
		n := g.attention.Reload(g.world, name)
		g.setStatus("reloaded preset %s (%d widgets)", name, n)
	case prefabs.ChangeScene:
		if trimExt(change.Name) != g.sceneName {
			return
		}
		if err := g.loadScene(); err != nil {
			g.setStatus("scene reload failed: %v", err)
			return
		}
		g.setStatus("reloaded scene %s", g.sceneName)
	case prefabs.ChangeScript:
		n := g.runtime.Invalidate(change.Name)
		g.setStatus("reloaded script %s (%d widgets)", change.Name, n)
	}
}
