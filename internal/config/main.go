package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory    = kingpin.Arg("directory", "Level directory").Default("levels").ExistingDir()
	LevelNumber  = kingpin.Flag("level", "Level to play, prompts when 0").Default("0").Short('l').Int()
	PresetsFile  = kingpin.Flag("presets", "Level presets file, relative to the level directory").Default("presets.yaml").String()
	FallSpeed    = kingpin.Flag("fall-speed", "Override the starting fall speed").Default("0").Short('s').Int()
	RefreshRate  = kingpin.Flag("refresh-rate", "Frames per second").Default("60").Short('R').Float64()
	Device       = kingpin.Flag("device", "Read keys from an evdev device instead of the terminal").Short('D').String()
	ReleaseAfter = kingpin.Flag("release-after", "Terminal only, a held key is released once it stops repeating for this long").Default("550ms").Duration()
	FireKey      = kingpin.Flag("fire-key", "Terminal key for the guardian to fire").Default("f").String()
	Seed         = kingpin.Flag("seed", "Enemy placement seed, 0 picks one").Default("0").Int64()
	LogFile      = kingpin.Flag("log", "Log file").Default("shadowdance.log").String()
	LogLevel     = kingpin.Flag("log-level", "DEBUG, INFO, ERROR or NONE").Default("INFO").String()
	Mute         = kingpin.Flag("mute", "Disable sound").Short('m').Bool()
	Music        = kingpin.Flag("music", "mp3 to play alongside the level").ExistingFile()
	FramePeriod  float64
)

// Parse reads the command line, it must run before any flag is used.
func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	FramePeriod = 1 / *RefreshRate
}
