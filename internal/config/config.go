package config

import "time"

const (
	// Gauge geometry, in view box units (the SVG is 200x200)
	ViewBox       = 200.0
	CenterX       = 100.0
	CenterY       = 100.0
	OutlineRadius = 95.0
	AxisRadius    = 85.0
	MajorTickLen  = 12.0
	MinorTickLen  = 6.0
	TickPadding   = 18.0
	ButtonRadius  = 5.0

	// Terminal rendering
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)

	// Animation
	TransitionDuration = 1500 * time.Millisecond // Needle and text tween length
	TargetFPS          = 30                      // Animation clock frequency

	// Demo mode
	DemoInterval = 2500 * time.Millisecond // Time between sampled readings

	// Dashboard
	HistorySize = 120 // Readings kept per gauge for the detail sparkline

	// Logging
	LogFile       = "weather-gauges.log"
	LogMaxSizeMB  = 5
	LogMaxBackups = 3

	// App
	AppName    = "WEATHER-GAUGES"
	AppVersion = "1.0"
	EnvPrefix  = "WEATHER_GAUGES"
)
