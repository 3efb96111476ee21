package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/thelolagemann/go-dmg/internal/cheats"
	"github.com/thelolagemann/go-dmg/internal/config"
	"github.com/thelolagemann/go-dmg/internal/debugger"
	"github.com/thelolagemann/go-dmg/internal/gameboy"
	"github.com/thelolagemann/go-dmg/pkg/log"
	"github.com/thelolagemann/go-dmg/pkg/utils"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(os.Stderr, cfg.LogLevel)
	if err := run(cfg, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	// open the rom file
	rom, err := utils.LoadFile(cfg.ROM)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.AsModel(cfg.HardwareModel()),
		gameboy.WithBreakpoints(cfg.Breakpoints...),
	}
	if cfg.Boot != "" {
		boot, err := utils.LoadFile(cfg.Boot)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if cfg.State != "" {
		state, err := os.ReadFile(cfg.State)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithState(state))
	}
	if cfg.Cheats != "" {
		c, err := cheats.LoadFile(cfg.Cheats)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithCheats(c...))
	}
	if !cfg.Strict {
		opts = append(opts, gameboy.TolerateUndefined())
	}
	if cfg.Trace != "" {
		w, closer, err := output(cfg.Trace)
		if err != nil {
			return err
		}
		defer closer()
		opts = append(opts, gameboy.Trace(w))
	}
	if cfg.Serial != "" {
		w, closer, err := output(cfg.Serial)
		if err != nil {
			return err
		}
		defer closer()
		opts = append(opts, gameboy.SerialOutput(w))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Debug {
		fmt.Printf("%s (%016x), h for help\n", gb.Cartridge().Title(), gb.Cartridge().Fingerprint())
		return debugger.New(gb, os.Stdin, os.Stdout).Run(ctx)
	}

	err = gb.Run(ctx)
	switch {
	case errors.Is(err, gameboy.ErrHalted), errors.Is(err, gameboy.ErrBreakpoint):
		logger.Infof("%v", err)
		fmt.Println(gb.CPU)
		return nil
	case errors.Is(err, context.Canceled):
		logger.Infof("interrupted after %d cycles", gb.CPU.Cycles())
		return nil
	}
	return err
}

// output opens filename for writing, or returns stdout for "-".
func output(filename string) (io.Writer, func(), error) {
	if filename == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
