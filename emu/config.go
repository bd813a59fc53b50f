package emu

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"anfsq7/emu/log"
	"anfsq7/hw"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

type Config struct {
	Drum    DrumConfig    `toml:"drum"`
	Gun     GunConfig     `toml:"gun"`
	General GeneralConfig `toml:"general"`

	TraceOut io.WriteCloser `toml:"-"`
}

type DrumConfig struct {
	LRISize int `toml:"lri_size"`
	GFISize int `toml:"gfi_size"`
	XTLSize int `toml:"xtl_size"`
	SDCSize int `toml:"sdc_size"`
}

type GunConfig struct {
	// Per-axis match window, in 1/32768 steps of the display fraction.
	// 0 selects the built-in default.
	Tolerance int `toml:"tolerance"`
}

type GeneralConfig struct {
	// MaxTicks bounds a run; 0 means unbounded.
	MaxTicks int `toml:"max_ticks"`
}

// FieldSizes converts the drum section to hw sizes, filling in the defaults
// for fields left at zero.
func (dc DrumConfig) FieldSizes() hw.FieldSizes {
	sizes := hw.DefaultFieldSizes
	if dc.LRISize > 0 {
		sizes.LRI = dc.LRISize
	}
	if dc.GFISize > 0 {
		sizes.GFI = dc.GFISize
	}
	if dc.XTLSize > 0 {
		sizes.XTL = dc.XTLSize
	}
	if dc.SDCSize > 0 {
		sizes.SDC = dc.SDCSize
	}
	return sizes
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("anfsq7")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the config directory,
// or provides a default one.
func LoadConfigOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg)
	if err != nil {
		return Config{}
	}
	return cfg
}

// SaveConfig into the config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
