package cli

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/reldate/cli/cmd"
	"github.com/ardnew/reldate/log"
	"github.com/ardnew/reldate/pkg"
	"github.com/ardnew/reldate/zoned"
)

// Errors returned by [Run] before a command executes.
var (
	ErrConfig      = cmd.NewError("invalid configuration")
	ErrInvalidFlag = cmd.NewError("invalid flag value")
)

// CLI is the top-level command-line interface for reldate.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Source     []string `help:"Read expressions from file(s), one per line, or '-' for stdin" name:"source" short:"s" type:"existingfile"`
	Tz         string   `help:"Time zone: an IANA name, utc or local"                        default:"local"      short:"z"`
	Now        string   `help:"Fixed reference time instead of the system clock"                                             placeholder:"DATE"`
	WeekStart  string   `help:"First day of the week"                                        default:"sunday"     enum:"${weekdays}"`
	PresetPath string   `help:"Preset catalog file(s), separated like PATH"                  name:"presets"                  placeholder:"PATH"`

	Eval    cmd.Eval    `cmd:"" default:"withargs" help:"Evaluate expressions and dates"`
	Check   cmd.Check   `cmd:""                    help:"Validate expressions"`
	Explain cmd.Explain `cmd:""                    help:"Show every step of an expression"`
	Presets cmd.Presets `cmd:""                    help:"List presets with their values"`
	Calc    cmd.Calc    `cmd:""                    help:"Run a date arithmetic program"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Repl    cmd.Repl    `cmd:""                    help:"Start an interactive prompt"`
}

// weekdays are the accepted --week-start values, in time.Weekday order.
var weekdays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// Run executes the reldate CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := pkg.ConfigFile()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"weekdays":           strings.Join(weekdays, ","),
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	settings, err := cli.settings()
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSettings(ctx, settings)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	log.DebugContext(ctx, "run",
		slog.String("command", ktx.Command()),
		slog.String("zone", settings.Zone.String()),
		slog.String("week_start", settings.WeekStart.String()),
		slog.Any("presets", settings.PresetFiles),
	)

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

// settings converts the global flags to evaluation settings.
func (c *CLI) settings() (cmd.Settings, error) {
	zone, err := zoned.LoadZone(c.Tz)
	if err != nil {
		return cmd.Settings{}, ErrInvalidFlag.
			With(slog.String("flag", "tz"), slog.String("value", c.Tz)).
			Wrap(err)
	}

	s := cmd.Settings{
		Zone:        zone,
		WeekStart:   weekday(c.WeekStart),
		PresetFiles: presetSearchPath(c.PresetPath),
	}

	if c.Now != "" {
		now, err := zoned.Parse(c.Now, zone)
		if err != nil {
			return cmd.Settings{}, ErrInvalidFlag.
				With(slog.String("flag", "now"), slog.String("value", c.Now)).
				Wrap(err)
		}

		instant := now.Instant()
		s.Clock = func() time.Time { return instant }
	}

	return s, nil
}

// weekday returns the day named by s, or Sunday.
func weekday(s string) time.Weekday {
	for i, name := range weekdays {
		if strings.EqualFold(s, name) {
			return time.Weekday(i)
		}
	}

	return time.Sunday
}
