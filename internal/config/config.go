// internal/config/config.go
package config

import "image/color"

const (
	WindowTitle  = "Hex Ants"
	ScreenWidth  = 1280 // fallback when the monitor size is unknown
	ScreenHeight = 720

	AntCount = 20

	AntSpeedMin   = 0.0008 // progress units per frame
	AntSpeedMax   = 0.0023
	AntSizeMin    = 3.0 // pixels
	AntSizeMax    = 4.5
	AntOpacityMin = 0.8
	AntOpacityMax = 1.0

	BackdropStrokeWidth = 1.0

	GSettingsSchema = "org.gnome.desktop.interface"
	GSettingsKey    = "enable-animations"

	EnvPrefix        = "ANTS_"
	EnvReducedMotion = EnvPrefix + "REDUCED_MOTION"
)

const (
	MotionSourceAuto      = "auto"
	MotionSourceStatic    = "static"
	MotionSourceEnv       = "env"
	MotionSourceSignal    = "signal"
	MotionSourceGSettings = "gsettings"
)

var (
	AntColor      = color.NRGBA{44, 95, 45, 255} // alpha is replaced by each ant's opacity
	BackdropColor = color.NRGBA{44, 95, 45, 40}
	PaperColor    = color.NRGBA{250, 248, 240, 255} // snapshot background
)
