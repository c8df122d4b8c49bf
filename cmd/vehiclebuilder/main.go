// Command vehiclebuilder builds, prices and saves vehicle units from the
// command line.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/armourforge/vehicle-builder/internal/catalog"
	"github.com/armourforge/vehicle-builder/internal/config"
	"github.com/armourforge/vehicle-builder/internal/dispatcher"
	"github.com/armourforge/vehicle-builder/internal/engine"
	"github.com/armourforge/vehicle-builder/internal/logging"
)

// AppName prefixes log files and is the default unit name source.
const AppName = "vehiclebuilder"

// options are the parsed command-line flags.
type options struct {
	configDir string
	logLevel  string
	name      string
	weapons   []string
	save      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configDir, "config-dir", "c", ".", "directory containing "+config.FileName)
	fs.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	fs.StringVarP(&opts.name, "name", "n", "", "name for the built unit")
	fs.StringArrayVarP(&opts.weapons, "weapon", "w", nil, "equip a weapon as MOUNT=WEAPON (repeatable)")
	fs.BoolVarP(&opts.save, "save", "s", false, "save the built unit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] <command> [args...]\n\nflags:\n%s", AppName, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := config.Load(opts.configDir); err != nil {
		// defaults are already registered; a missing file is fine
		fmt.Fprintln(stderr, "warning:", err)
	}
	if opts.logLevel != "" {
		viper.Set("logLevel", opts.logLevel)
	}

	slogs, zlog, closeLogs, err := setupLogging(stderr)
	if err != nil {
		return err
	}
	defer closeLogs()

	cat, source, err := loadCatalog(config.GetString("catalog.file"))
	if err != nil {
		return err
	}

	rest := fs.Args()
	session := logging.Session{
		ID:      uuid.NewString(),
		Catalog: source,
		Storage: config.GetString("storage.type"),
	}
	if len(rest) > 0 {
		session.Command = rest[0]
	}
	slogger := slogs.StartSession(session)
	zlog = zlog.With().Str("session", session.ID).Logger()

	eng, err := engine.New(cat, logging.NewEngineLogger(zlog.With().Str("component", "engine").Logger()))
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	backend, err := createStorageBackend(config.GetStorageConfig(), zlog, source)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			zlog.Error().Err(err).Msg("Failed to close storage backend")
		}
	}()

	d, err := dispatcher.New(logging.NewEngineLogger(zlog.With().Str("component", "dispatcher").Logger()))
	if err != nil {
		return fmt.Errorf("creating dispatcher: %w", err)
	}
	a := &app{engine: eng, catalog: cat, store: backend, log: slogger, opts: opts}
	a.register(d)

	if len(rest) == 0 {
		fs.Usage()
		printCommands(stderr, d)
		return nil
	}

	result, err := d.Dispatch(dispatcher.Event{Command: rest[0], Args: rest[1:], Timestamp: time.Now()})
	if errors.Is(err, dispatcher.ErrUnknownCommand) {
		printCommands(stderr, d)
	}
	if err != nil {
		return err
	}
	return printResult(stdout, result)
}

// setupLogging wires slog (command output) and zerolog (engine and database)
// to stderr and, when logsDir is set, a session log file.
func setupLogging(stderr io.Writer) (*logging.SlogManager, zerolog.Logger, func(), error) {
	level := config.GetString("logLevel")

	var file io.Writer
	closeFn := func() {}
	if dir := config.GetString("logsDir"); dir != "" {
		f, err := logging.OpenLogFile(dir, AppName, time.Now())
		if err != nil {
			return nil, zerolog.Nop(), closeFn, err
		}
		file = f
		closeFn = func() { f.Close() }
	}

	slogManager := logging.NewSlogManager()
	slogManager.Setup(logging.Options{Console: stderr, File: file, Level: level})

	return slogManager, logging.NewZerolog(stderr, file, level), closeFn, nil
}

func loadCatalog(path string) (*catalog.Catalog, string, error) {
	if path == "" {
		cat, err := catalog.Default()
		return cat, "embedded", err
	}
	cat, err := catalog.LoadFile(path)
	return cat, path, err
}

func printCommands(w io.Writer, d *dispatcher.Dispatcher) {
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range d.Commands() {
		fmt.Fprintf(w, "  %-8s %s\n", c.Name, c.Usage)
	}
}

func printResult(w io.Writer, result any) error {
	switch v := result.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
