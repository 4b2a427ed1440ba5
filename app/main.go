package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/spamguard/spamguard/app/config"
	"github.com/spamguard/spamguard/app/discord"
	"github.com/spamguard/spamguard/app/eventlog"
	"github.com/spamguard/spamguard/app/events"
	"github.com/spamguard/spamguard/app/security"
	"github.com/spamguard/spamguard/app/server"
	"github.com/spamguard/spamguard/app/storage"
	"github.com/spamguard/spamguard/app/storage/engine"
	"github.com/spamguard/spamguard/app/verify"
)

type options struct {
	Discord struct {
		Token string `long:"token" env:"TOKEN" description:"discord bot token" required:"true"`
	} `group:"discord" namespace:"discord" env-namespace:"DISCORD"`

	ConfigPath  string           `long:"config" env:"SPAMGUARD_CONFIG_PATH" default:"config.json" description:"per-guild configuration file"`
	DataBaseURL string           `long:"db" env:"DB" default:"" description:"audit database URL, sqlite file or postgres, disabled if empty"`
	Operators   events.Operators `long:"operator" env:"OPERATORS" env-delim:"," description:"user ids allowed to manage any guild"`

	EventLog struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable rotated event log"`
		FileName   string `long:"file" env:"FILE"  default:"spamguard-events.log" description:"location of event log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"eventlog" namespace:"eventlog" env-namespace:"EVENTLOG"`

	Server struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable unban web server"`
		ListenAddr string `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		URL        string `long:"url" env:"URL" description:"outside url of the server, unban links disabled if empty"`
		Secret     string `long:"secret" env:"SECRET" description:"secret for signed unban tokens"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("spamguard %s\n", revision)

	_ = godotenv.Load() // optional .env from the working directory, flags read env on parse

	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg, opts.Discord.Token, opts.Server.Secret)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// execute wires the moderation stack and runs the gateway listener until the
// context is canceled
func execute(ctx context.Context, opts options) error {
	configs, err := config.NewStore(expandPath(opts.ConfigPath))
	if err != nil {
		return fmt.Errorf("can't open config store, %w", err)
	}
	go func() {
		if werr := config.Watch(ctx, configs, 0); werr != nil {
			log.Printf("[WARN] config watcher stopped, %v", werr)
		}
	}()

	// audit store is optional, events still go to the log channel and the
	// JSONL stream without it
	var recorder eventlog.Recorder
	if opts.DataBaseURL != "" {
		db, derr := engine.New(ctx, opts.DataBaseURL, "spamguard")
		if derr != nil {
			return fmt.Errorf("can't connect to database, %w", derr)
		}
		defer db.Close()
		eventsStore, serr := storage.NewEvents(ctx, db)
		if serr != nil {
			return fmt.Errorf("can't make events store, %w", serr)
		}
		recorder = eventsStore
	}

	logWr, err := makeEventLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make event log writer, %w", err)
	}
	defer logWr.Close()

	session, err := discordgo.New("Bot " + opts.Discord.Token)
	if err != nil {
		return fmt.Errorf("can't make discord session, %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent | discordgo.IntentsDirectMessages

	if err := session.Open(); err != nil {
		return fmt.Errorf("can't open discord session, %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Printf("[WARN] failed to close discord session, %v", cerr)
		}
	}()

	// the ready event fills the state cache, fetch the identity explicitly so
	// the listener never starts with an empty bot id
	if session.State.User == nil {
		me, uerr := session.User("@me")
		if uerr != nil {
			return fmt.Errorf("can't fetch bot identity, %w", uerr)
		}
		session.State.User = me
	}
	log.Printf("[INFO] connected as %q (%s)", session.State.User.Username, session.State.User.ID)

	adapter := discord.NewAdapter(session, session.State)
	evLogger := eventlog.New(eventlog.Params{Sender: adapter, Recorder: recorder, Stream: logWr})

	runtimeParams := security.Params{Adapter: adapter, Configs: configs, Logger: evLogger}
	if opts.Server.Enabled {
		web := server.NewWeb(adapter, server.Params{
			Version:    revision,
			Secret:     opts.Server.Secret,
			URL:        opts.Server.URL,
			ListenAddr: opts.Server.ListenAddr,
		})
		runtimeParams.UnbanLink = web.UnbanURL
		go func() {
			if serr := web.Run(ctx); serr != nil {
				log.Printf("[WARN] unban server terminated, %v", serr)
			}
		}()
	}

	secRuntime := security.NewRuntime(runtimeParams)

	verifier := verify.NewManager(verify.Params{Adapter: adapter, Configs: configs, Logger: evLogger})
	defer verifier.Close()

	listener := &events.Listener{
		API:       session,
		Directory: adapter,
		Security:  secRuntime,
		Verifier:  verifier,
		Configs:   configs,
		Operators: opts.Operators,
	}
	log.Printf("[DEBUG] listener config: {operators: %v, server: %v, db: %q}",
		opts.Operators, opts.Server.Enabled, opts.DataBaseURL)

	if err := listener.Do(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("discord listener failed, %w", err)
	}
	return nil
}

// makeEventLogWriter creates the writer behind the JSONL event stream, a
// rotated lumberjack file when enabled and a discarding writer otherwise
func makeEventLogWriter(opts options) (logWriter io.WriteCloser, err error) {
	if !opts.EventLog.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	sizeParse := func(inp string) (uint64, error) {
		if inp == "" {
			return 0, errors.New("empty value")
		}
		for i, sfx := range []string{"k", "m", "g", "t"} {
			if strings.HasSuffix(inp, strings.ToUpper(sfx)) || strings.HasSuffix(inp, strings.ToLower(sfx)) {
				val, err := strconv.Atoi(inp[:len(inp)-1])
				if err != nil {
					return 0, fmt.Errorf("can't parse %s: %w", inp, err)
				}
				return uint64(float64(val) * math.Pow(float64(1024), float64(i+1))), nil
			}
		}
		return strconv.ParseUint(inp, 10, 64)
	}

	maxSize, perr := sizeParse(opts.EventLog.MaxSize)
	if perr != nil {
		return nil, fmt.Errorf("can't parse eventlog MaxSize: %w", perr)
	}

	maxSize /= 1048576

	log.Printf("[INFO] event log enabled for %s, max size %dM", opts.EventLog.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.EventLog.FileName,
		MaxSize:    int(maxSize), // in MB
		MaxBackups: opts.EventLog.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

// expandPath expands ~ to the user's home and relative paths to absolute
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	if absPath, err := filepath.Abs(path); err == nil {
		return absPath
	}
	return path
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
