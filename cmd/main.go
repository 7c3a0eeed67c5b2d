// Package main implements a CHIP-8 emulator
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nevisdale/chiptic/internal/chip8"
	"github.com/nevisdale/chiptic/internal/ui"
	"github.com/pkg/profile"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	romFile string

	steps int
	seed  int64

	debug bool
	quiet bool
	mute  bool

	profileMode string
}

func main() {
	options := readArguments()
	logger := createLogger(options)
	printBanner(options)

	switch options.profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logger.Fatal("unknown profile mode", log.String("mode", options.profileMode))
	}

	if err := run(logger, options); err != nil {
		logger.Fatal(err.Error())
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.IntVar(&options.steps, "steps", 0, "instructions to execute per frame, 0 uses the default")
	flags.Int64Var(&options.seed, "seed", 0, "seed for the random number generator, 0 picks a random one")
	flags.BoolVar(&options.debug, "debug", false, "start with the debug overlay enabled")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.mute, "mute", false, "disable sound")
	flags.StringVar(&options.profileMode, "profile", "", "enable profiling, one of: cpu, mem")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner(options)
		fmt.Printf("usage: chiptic [options] <rom file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.romFile = args[0]

	return options
}

func printBanner(options optionFlags) {
	if !options.quiet {
		fmt.Println("[-----------------------------]")
		fmt.Println("[ chiptic - a CHIP-8 emulator ]")
		fmt.Printf("[-----------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func createLogger(options optionFlags) *log.Logger {
	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	} else if options.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func run(logger *log.Logger, options optionFlags) error {
	rom, err := os.ReadFile(options.romFile)
	if err != nil {
		return fmt.Errorf("couldn't read the rom file: %s", err)
	}

	var opts []chip8.Option
	if options.seed != 0 {
		opts = append(opts, chip8.WithSeed(options.seed))
	}
	ch, err := chip8.New(opts...)
	if err != nil {
		return fmt.Errorf("couldn't create the machine: %s", err)
	}
	if err := ch.LoadROM(rom); err != nil {
		return fmt.Errorf("couldn't load the rom: %s", err)
	}
	logger.Info("rom loaded",
		log.String("file", options.romFile),
		log.Int("size", len(rom)))

	u, err := ui.New(ch, ui.Config{
		Logger:        logger,
		StepsPerFrame: options.steps,
		ShowDebug:     options.debug,
		Mute:          options.mute,
	})
	if err != nil {
		return fmt.Errorf("couldn't create the ui: %s", err)
	}
	return ui.RunUI(u)
}
