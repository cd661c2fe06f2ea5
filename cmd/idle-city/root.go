package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/audio"
	"github.com/lixenwraith/idle-city/config"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/terminal"
)

// options holds the command-line flags
type options struct {
	configPath  string
	contentPath string
	debug       bool
	mute        bool
	admin       bool
	watch       bool
	seed        uint64
	color       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "idle-city",
		Short: "A terminal idle game about a growing city and what lies beneath it",
		Long: `Buy upgrades to grow the city's income, research multipliers, dig for ore
and feed a black hole. Somewhere along the way the world starts to slip.

Keys are shown on every page. Ctrl+C or Ctrl+Q quits, Ctrl+S toggles sound.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.contentPath, "content", "", "game content YAML replacing the embedded tables")

	f = cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "settings YAML file")
	f.BoolVar(&opts.debug, "debug", false, "write JSON logs to logs/idle-city.log and show the metrics overlay")
	f.BoolVar(&opts.mute, "mute", false, "start with sound off")
	f.BoolVar(&opts.admin, "admin", false, "enable admin keys")
	f.BoolVar(&opts.watch, "watch", false, "reload the settings file when it changes")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	f.StringVar(&opts.color, "color", "auto", "color mode: auto, 256, truecolor")

	cmd.AddCommand(newContentCmd(opts))
	return cmd
}

// resolveSettings layers defaults, the settings file and explicitly set flags
func resolveSettings(cmd *cobra.Command, opts *options) (engine.Settings, uint64, error) {
	settings := engine.DefaultSettings()
	file, err := config.Load(opts.configPath)
	if err != nil {
		return settings, 0, err
	}
	file.Apply(&settings)

	seed := opts.seed
	if !cmd.Flags().Changed("seed") && file.Seed != nil {
		seed = *file.Seed
	}
	if cmd.Flags().Changed("mute") {
		settings.SoundEnabled = !opts.mute
	}
	if cmd.Flags().Changed("admin") {
		settings.AdminKeys = opts.admin
	}
	settings.Debug = opts.debug
	return settings, seed, nil
}

func runGame(cmd *cobra.Command, opts *options) error {
	if opts.watch && opts.configPath == "" {
		return errors.New("--watch needs --config")
	}
	colorMode, err := terminal.ParseColorMode(opts.color)
	if err != nil {
		return err
	}
	settings, seed, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}
	c, err := loadContent(opts.contentPath)
	if err != nil {
		return err
	}

	logger, err := setupLogging(opts.debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer sound.Cleanup()

	term, err := terminal.New(colorMode)
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	g, err := newGame(term, c, settings, seed, logger, sound)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if opts.watch {
		watcher, err = config.NewWatcher(opts.configPath, g.ctx.Queue(), logger)
		if err != nil {
			return err
		}
	}

	return g.run(cmd.Context(), watcher)
}
