package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"infcanvas/internal/canvas"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	ZoomSensitivity float64
	ZoomAnchor      string
	WheelStep       float64
	StrokeColor     string
	Background      string
	StrokeWidth     float64
	SnapshotDir     string
	SnapshotScale   int
	LogFile         string
	WindowWidth     int
	WindowHeight    int
}

// Load reads the configuration from the environment and validates it. A
// numeric variable that does not parse is an error, not a fallback.
func Load() (*Config, error) {
	var errs []error
	asInt := func(key string, defaultVal int) int {
		v, err := getEnvAsInt(key, defaultVal)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	asFloat := func(key string, defaultVal float64) float64 {
		v, err := getEnvAsFloat(key, defaultVal)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := &Config{
		ZoomSensitivity: asFloat("CANVAS_ZOOM_SENSITIVITY", canvas.DefaultSensitivity),
		ZoomAnchor:      strings.ToLower(getEnv("CANVAS_ZOOM_ANCHOR", "exact")),
		WheelStep:       asFloat("CANVAS_WHEEL_STEP", 100),
		StrokeColor:     getEnv("CANVAS_STROKE_COLOR", "#ffffff"),
		Background:      getEnv("CANVAS_BACKGROUND", "#000000"),
		StrokeWidth:     asFloat("CANVAS_STROKE_WIDTH", 2),
		SnapshotDir:     getEnv("CANVAS_SNAPSHOT_DIR", "."),
		SnapshotScale:   asInt("CANVAS_SNAPSHOT_SCALE", 4),
		LogFile:         getEnv("CANVAS_LOG", ""),
		WindowWidth:     asInt("CANVAS_WINDOW_WIDTH", 1280),
		WindowHeight:    asInt("CANVAS_WINDOW_HEIGHT", 800),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.ZoomSensitivity <= 0 {
		return fmt.Errorf("config: zoom sensitivity must be > 0, got %v", c.ZoomSensitivity)
	}
	if _, err := c.Anchor(); err != nil {
		return err
	}
	if c.WheelStep <= 0 {
		return fmt.Errorf("config: wheel step must be > 0, got %v", c.WheelStep)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("config: stroke width must be > 0, got %v", c.StrokeWidth)
	}
	if c.SnapshotScale < 1 {
		return fmt.Errorf("config: snapshot scale must be >= 1, got %d", c.SnapshotScale)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if _, err := parseColor(c.StrokeColor); err != nil {
		return fmt.Errorf("config: stroke color: %w", err)
	}
	if _, err := parseColor(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	return nil
}

// Anchor maps ZoomAnchor to a canvas anchoring strategy.
func (c *Config) Anchor() (canvas.Anchor, error) {
	switch c.ZoomAnchor {
	case "", "exact":
		return canvas.AnchorExact, nil
	case "incremental":
		return canvas.AnchorIncremental, nil
	}
	return 0, fmt.Errorf("config: unknown zoom anchor %q (want exact or incremental)", c.ZoomAnchor)
}

// Style returns the renderer paint. Call only on a validated config.
func (c *Config) Style() canvas.Style {
	stroke, _ := parseColor(c.StrokeColor)
	bg, _ := parseColor(c.Background)
	return canvas.Style{Background: bg, Stroke: stroke, Width: c.StrokeWidth}
}

// Options returns the machine options implied by the config.
func (c *Config) Options() []canvas.Option {
	anchor, _ := c.Anchor()
	return []canvas.Option{
		canvas.WithSensitivity(c.ZoomSensitivity),
		canvas.WithAnchor(anchor),
		canvas.WithStyle(c.Style()),
	}
}

func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal, fmt.Errorf("config: %s: %w", key, err)
	}
	return intVal, nil
}

func getEnvAsFloat(key string, defaultVal float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultVal, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}
