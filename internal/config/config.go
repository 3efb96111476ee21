// Package config holds the settings of the command line emulator. They
// are read from an optional YAML file, then overridden by flags.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/go-dmg/internal/types"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a run.
type Config struct {
	ROM         string   `yaml:"rom"`
	Boot        string   `yaml:"boot"`
	Model       string   `yaml:"model"`
	Debug       bool     `yaml:"debug"`
	Trace       string   `yaml:"trace"` // file to trace to, "-" for stdout
	Strict      bool     `yaml:"strict"`
	LogLevel    string   `yaml:"log-level"`
	State       string   `yaml:"state"`
	Cheats      string   `yaml:"cheats"`
	Serial      string   `yaml:"serial"` // file to write serial output to, "-" for stdout
	Breakpoints []uint16 `yaml:"breakpoints"`
}

// Default returns the configuration used when neither a file nor
// flags say otherwise.
func Default() *Config {
	return &Config{
		Model:    "auto",
		Strict:   true,
		LogLevel: "info",
	}
}

// Load reads a YAML configuration file over the defaults. Unknown keys
// are an error.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(filename); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Parse parses the command line arguments. If -config is given the file
// is loaded first, and any flag set explicitly overrides its value. The
// ROM may also be given as the first positional argument.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	var flags Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	configFile := fs.String("config", "", "YAML configuration file")
	fs.StringVar(&flags.ROM, "rom", "", "The rom file to load")
	fs.StringVar(&flags.Boot, "boot", "", "The boot rom file to load")
	fs.StringVar(&flags.Model, "model", "auto", "The model to emulate. Can be auto, dmg0, dmg, mgb, sgb or sgb2")
	fs.BoolVar(&flags.Debug, "debug", false, "Start the interactive debugger")
	fs.StringVar(&flags.Trace, "trace", "", "Trace every instruction to a file, - for stdout")
	fs.BoolVar(&flags.Strict, "strict", true, "Fail on undefined opcodes rather than skipping them")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "The log level: debug, info or error")
	fs.StringVar(&flags.State, "state", "", "The state file to resume from")
	fs.StringVar(&flags.Cheats, "cheats", "", "A file of Game Genie and GameShark codes")
	fs.StringVar(&flags.Serial, "serial", "", "Write serial output to a file, - for stdout")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	if *configFile != "" {
		if err := cfg.loadFile(*configFile); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rom":
			cfg.ROM = flags.ROM
		case "boot":
			cfg.Boot = flags.Boot
		case "model":
			cfg.Model = flags.Model
		case "debug":
			cfg.Debug = flags.Debug
		case "trace":
			cfg.Trace = flags.Trace
		case "strict":
			cfg.Strict = flags.Strict
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "state":
			cfg.State = flags.State
		case "cheats":
			cfg.Cheats = flags.Cheats
		case "serial":
			cfg.Serial = flags.Serial
		}
	})
	if cfg.ROM == "" && fs.NArg() > 0 {
		cfg.ROM = fs.Arg(0)
	}

	return cfg, cfg.Validate()
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.ROM == "" {
		result = multierror.Append(result, errors.New("no rom file given"))
	}
	if !strings.EqualFold(c.Model, "auto") && types.StringToModel(c.Model) == types.Unset {
		result = multierror.Append(result, fmt.Errorf("unknown model %q", c.Model))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// HardwareModel returns the model to emulate, types.Unset for auto.
func (c *Config) HardwareModel() types.Model {
	return types.StringToModel(c.Model)
}
