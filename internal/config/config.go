// Package config holds the settings shared by the viewer and the data server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	Viewer Viewer `yaml:"viewer"`
}

type Server struct {
	Addr      string `yaml:"addr"`
	DataFile  string `yaml:"data_file"`
	PublicDir string `yaml:"public_dir"`
}

type Viewer struct {
	DataURL      string        `yaml:"data_url"`
	DataFile     string        `yaml:"data_file"` // read instead of DataURL when set
	FPS          int           `yaml:"fps"`
	Margin       float64       `yaml:"margin"`
	LogFile      string        `yaml:"log_file"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:      ":3000",
			DataFile:  "data/vertices.json",
			PublicDir: "public",
		},
		Viewer: Viewer{
			DataURL:      "http://localhost:3000/data",
			FPS:          30,
			Margin:       16,
			LogFile:      "secview.log",
			FetchTimeout: 10 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults. PORT in the environment overrides the server port.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return c, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	return c, c.Validate()
}

// Validate rejects settings the viewer and server cannot run with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is empty")
	}
	if c.Viewer.FPS <= 0 {
		return fmt.Errorf("viewer.fps must be positive, got %d", c.Viewer.FPS)
	}
	if c.Viewer.Margin < 0 {
		return fmt.Errorf("viewer.margin must not be negative, got %g", c.Viewer.Margin)
	}
	if c.Viewer.DataURL == "" && c.Viewer.DataFile == "" {
		return errors.New("viewer needs data_url or data_file")
	}
	return nil
}

// FrameInterval is the delay between rendered 3D frames.
func (v Viewer) FrameInterval() time.Duration {
	if v.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(v.FPS)
}
