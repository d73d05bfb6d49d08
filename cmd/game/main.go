package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pevious/internal/application/game"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/scene/gameover"
	"github.com/younwookim/pevious/internal/application/scene/playing"
	"github.com/younwookim/pevious/internal/application/scene/ready"
	"github.com/younwookim/pevious/internal/application/scene/title"
	"github.com/younwookim/pevious/internal/application/system"
	"github.com/younwookim/pevious/internal/infrastructure/assets"
	"github.com/younwookim/pevious/internal/infrastructure/audio"
	"github.com/younwookim/pevious/internal/infrastructure/clipboard"
	"github.com/younwookim/pevious/internal/infrastructure/config"
	"github.com/younwookim/pevious/internal/infrastructure/highscore"
)

// preloadTimeout bounds how long startup waits for sprites. Missing
// sprites fall back to plain discs.
const preloadTimeout = 5 * time.Second

func main() {
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded set")
	assetDir := flag.String("assets", "assets", "Directory holding images/ and sounds/")
	seed := flag.Int64("seed", 0, "RNG seed for terrain and spawns (0 = time based)")
	scale := flag.Float64("scale", 0, "Window scale (0 = use config)")
	mute := flag.Bool("mute", false, "Start with audio muted")
	scorePath := flag.String("highscore", "", "High score file (default: user config dir)")
	debug := flag.Bool("debug", false, "Show TPS/FPS overlay")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings := cfg.Game

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", *seed)
	rng := rand.New(rand.NewSource(*seed))

	assetFS := os.DirFS(*assetDir)

	images := assets.NewImageManager(assetFS)
	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	if err := images.Preload(ctx, cfg.Assets.Images); err != nil {
		log.Printf("some images failed to load: %v", err)
	}
	cancel()

	sounds := audio.NewManager(audio.NewEbitenBackend(audio.DefaultSampleRate))
	loaded := sounds.Preload(assetFS, cfg.Assets.Sounds)
	log.Printf("loaded %d/%d sounds", loaded, len(cfg.Assets.Sounds))
	if cfg.Assets.BGM != "" {
		if err := sounds.Load(assetFS, scene.BGMKey, cfg.Assets.BGM); err != nil {
			log.Printf("bgm unavailable: %v", err)
		}
	}
	sounds.SetMuted(*mute)

	scores, err := openScores(*scorePath)
	if err != nil {
		log.Fatalf("Failed to open high score store: %v", err)
	}

	keys, err := system.NewInputSystem(settings.Controls)
	if err != nil {
		log.Fatalf("Failed to bind controls: %v", err)
	}

	w, h := settings.Display.ScreenWidth, settings.Display.ScreenHeight
	env := &scene.Env{
		Config:    cfg,
		Width:     float64(w),
		Height:    float64(h),
		Input:     system.NewController(keys),
		Scenery:   system.NewScenery(cfg.World, float64(w), float64(h), rng),
		Renderer:  system.NewRenderer(system.NewPalette(settings), images),
		Sounds:    sounds,
		Scores:    scores,
		Clipboard: clipboard.System{},
	}
	env.Scenes = scene.Factory{
		Title:    func() scene.Scene { return title.New(env) },
		Ready:    func() scene.Scene { return ready.New(env) },
		Playing:  func() scene.Scene { return playing.New(env, rng) },
		GameOver: func(score int) scene.Scene { return gameover.New(env, score) },
	}

	g := game.New(env.Scenes.Title(), w, h)
	g.SetDT(1.0 / float64(settings.Display.Framerate))
	g.SetDebug(*debug)
	g.OnFrame(images.Sync)
	g.OnFrame(sounds.Update)

	windowScale := settings.Display.Scale
	if *scale > 0 {
		windowScale = *scale
	}
	ebiten.SetWindowSize(int(float64(w)*windowScale), int(float64(h)*windowScale))
	ebiten.SetWindowTitle(settings.Display.Title)
	ebiten.SetTPS(settings.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads dir when given, otherwise the embedded configs
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

func openScores(path string) (*highscore.Store, error) {
	if path != "" {
		return highscore.Open(path)
	}
	return highscore.OpenDefault()
}
