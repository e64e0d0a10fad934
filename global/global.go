package global

import (
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
	"github.com/MSS23/vgc-mcp-sub002/vgcdata"
)

var (
	Opt = Settings{}

	// Usage snapshot bundled with the frontend, if any.
	USAGE []vgcdata.UsagePokemon

	// Global RNG that can be changed for testing purposes
	CalcRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	initLogger    zerolog.Logger
	previousLevel zerolog.Level
)

// GlobalInit wires up logging, reads the settings file and loads whatever data
// files the caller hands over. Frontends call this once before anything else.
// A nil files skips data loading so the calc packages can be used on their own.
func GlobalInit(files fs.FS, shouldLog bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	settingsDir := DefaultSettingsDir()
	settingsFilepath := DefaultSettingsLocation()

	// Basic logging for settings debugging
	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := os.MkdirAll(settingsDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create settings dir")
	}

	// Read settings file
	settingsContents, err := os.ReadFile(settingsFilepath)
	if err != nil {
		_, err := os.Create(settingsFilepath)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to create settings file")
		}
	}

	// Non-empty settings file
	if len(settingsContents) > 0 {
		newOpts := Settings{}
		if err := yaml.Unmarshal(settingsContents, &newOpts); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to parse settings file")
		} else {
			Opt = populateSettings(newOpts)
		}
	} else {
		settings := populateSettings(Settings{})
		if err := SaveSettings(settings); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default settings")
		}

		Opt = settings
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	multiLogger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, createFileWriter(settingsDir))).With().Timestamp().Logger().Level(level)

	initLogger = multiLogger
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	// Main global logger
	log.Logger = createLogger(settingsDir, level)
	setEngineLoggers()

	if files == nil {
		return
	}

	// Load concurrently
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		vgcdata.SetSpecies(loadSpecies(files, "data/species.csv"))
		wg.Done()
	}()
	go func() {
		USAGE = loadUsage(files, "data/usage.json")
		wg.Done()
	}()

	wg.Wait()
}

func loadSpecies(files fs.FS, filePath string) []vgccalc.Species {
	fileBytes, err := fs.ReadFile(files, filePath)
	if err != nil {
		initLogger.Fatal().Err(err).Msg("Couldn't open species data file")
	}

	initLogger.Info().Msg("Loading Species Data")

	species, err := vgcdata.LoadSpecies(fileBytes)
	if err != nil {
		initLogger.Fatal().Err(err).Msg("Couldn't parse species data file")
	}

	initLogger.Info().Msgf("Loaded %d species", len(species))

	return species
}

func loadUsage(files fs.FS, filePath string) []vgcdata.UsagePokemon {
	fileBytes, err := fs.ReadFile(files, filePath)
	if err != nil {
		// usage snapshots are optional, frontends can fetch fresh ones instead
		initLogger.Warn().Err(err).Msg("No bundled usage stats")
		return nil
	}

	usage, err := vgcdata.ParseUsageStats(fileBytes)
	if err != nil {
		initLogger.Err(err).Msg("Couldn't parse usage stats file")
		return nil
	}

	initLogger.Info().Msgf("Loaded usage stats for %d pokemon", len(usage))

	return usage
}

func createFileWriter(settingsDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(settingsDir, "logs/"), "vgccalc")
	return zerolog.ConsoleWriter{Out: rollingWriter}
}

func createLogger(settingsDir string, level zerolog.Level) zerolog.Logger {
	// Main global logger
	return zerolog.New(createFileWriter(settingsDir)).With().Timestamp().Caller().Logger().Level(level)
}

// setEngineLoggers points the calc packages at the global zerolog logger.
// The bridge holds a pointer to log.Logger, so later swaps (StopLogging,
// UpdateLogLevel) apply to engine logs too.
func setEngineLoggers() {
	bridge := zerologr.New(&log.Logger)
	vgccalc.SetInternalLogger(bridge)
	vgcdata.SetInternalLogger(bridge)
}

func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = zerolog.Nop()
}

func ContinueLogging() {
	log.Logger = createLogger(DefaultSettingsDir(), previousLevel)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}

func ForceRng(source rand.Source) {
	CalcRand = rand.New(source)
}

func SetNormalRng() {
	CalcRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
