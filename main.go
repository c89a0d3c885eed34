package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"git.lost.host/meutraa/shadowdance/internal/audio"
	"git.lost.host/meutraa/shadowdance/internal/combat"
	"git.lost.host/meutraa/shadowdance/internal/config"
	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/logger"
	"git.lost.host/meutraa/shadowdance/internal/parser"
	"git.lost.host/meutraa/shadowdance/internal/render"
	"git.lost.host/meutraa/shadowdance/internal/theme"
)

func main() {
	config.Parse()
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func openLog() (*logger.Logger, func(), error) {
	level := logger.LevelFromString(*config.LogLevel)
	if level == logger.LevelNone || *config.LogFile == "" {
		return logger.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log: %w", err)
	}
	return logger.New(f, level), func() { f.Close() }, nil
}

// Prompts for a level when none was given on the command line
func selectLevel(presets *config.Presets) (int, error) {
	if *config.LevelNumber != 0 {
		return *config.LevelNumber, nil
	}
	for _, n := range presets.Numbers() {
		preset, _ := presets.Get(n)
		mode := ""
		if preset.Combat {
			mode = "combat"
		}
		fmt.Printf("%2v) %-16v %5v  %v\n", n, preset.File, preset.Threshold, mode)
	}
	return input.ReadDigit()
}

func loadLevel(lg *logger.Logger, number int, preset config.Preset) (*game.Level, error) {
	var psr parser.Parser = &parser.DefaultParser{}

	file := filepath.Join(*config.Directory, preset.File)
	content, warnings, err := psr.Parse(file)
	if nil != err {
		return nil, err
	}
	for _, w := range warnings {
		lg.Warnf("%v: %v", file, w)
	}

	fallSpeed := preset.FallSpeed
	if *config.FallSpeed > 0 {
		fallSpeed = *config.FallSpeed
	}
	level, skipped, err := game.Load(number, preset.Threshold, fallSpeed, content)
	for _, s := range skipped {
		lg.Warnf("%v: %v", file, s)
	}
	if nil != err {
		return nil, fmt.Errorf("unable to load %v: %w", file, err)
	}
	lg.Infof("loaded level %v from %v: %v lanes, %v skipped records", number, file, len(level.Lanes()), len(warnings)+len(skipped))
	return level, nil
}

func openInput(lg *logger.Logger) (input.Source, time.Duration, error) {
	if *config.Device != "" {
		return &input.DeviceSource{Path: *config.Device, Log: lg}, 0, nil
	}
	fire, _ := utf8.DecodeRuneInString(*config.FireKey)
	if fire == utf8.RuneError {
		return nil, 0, fmt.Errorf("invalid fire key %q", *config.FireKey)
	}
	return &input.KeyboardSource{Fire: fire}, *config.ReleaseAfter, nil
}

func run() error {
	lg, closeLog, err := openLog()
	if nil != err {
		return err
	}
	defer closeLog()

	presets, err := config.LoadPresets(filepath.Join(*config.Directory, *config.PresetsFile))
	if nil != err {
		return err
	}
	number, err := selectLevel(presets)
	if nil != err {
		return err
	}
	preset, err := presets.Get(number)
	if nil != err {
		return err
	}

	level, err := loadLevel(lg, number, preset)
	if nil != err {
		return err
	}

	var field *combat.Field
	if preset.Combat {
		seed := *config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		lg.Infof("combat seed %v", seed)
		field = combat.NewField(rand.New(rand.NewSource(seed)), game.KeyFire)
		level.Attach(field)
	}

	player := &audio.DefaultPlayer{}
	if !*config.Mute {
		if err := player.Init(*config.Music); nil != err {
			lg.Errorf("%v, continuing without sound", err)
		}
	}
	defer player.Close()

	source, releaseAfter, err := openInput(lg)
	if nil != err {
		return err
	}
	events := make(chan input.Event, 128)
	if err := source.Start(events); nil != err {
		return err
	}
	defer func() {
		if err := source.Close(); nil != err {
			lg.Errorf("unable to close input: %v", err)
		}
	}()
	sampler := input.NewSampler(events, releaseAfter)

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			lg.Errorf("unable to restore terminal: %v", err)
		}
	}()

	p := &Program{
		Renderer: r,
		Theme:    th,
		Player:   player,
		Sampler:  sampler,
		Log:      lg,
		Level:    level,
		Field:    field,
	}

	period := time.Duration(config.FramePeriod * float64(time.Second))
	if !p.Run(period) {
		lg.Infof("level %v abandoned at frame %v", number, level.Frame())
		return nil
	}

	lg.Infof("level %v finished at frame %v: score %v, won %v", number, level.Frame(), level.TotalScore(), level.DidWin())
	p.Results(func() {
		for {
			if sampler.Sample(time.Now()).AnyPressed() {
				return
			}
			time.Sleep(period)
		}
	})
	return nil
}
