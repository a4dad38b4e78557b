package runner

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/colprofile/core/profile"
)

// Options holds the parsed CLI flags plus the profile options they feed.
type Options struct {
	Values  goflags.StringSlice // column values to profile (stdin, comma-separated, file)
	Output  string
	Format  string // "yaml" or "json"
	Config  string
	Verbose bool
	Silent  bool

	Profile profile.Options
}

// ParseFlags parses os.Args, reads a config file if given (or the default
// path if present), and falls back to reading the value column from
// stdin when -list is absent.
func ParseFlags() *Options {
	var minCoverage string

	opts := &Options{Profile: profile.DefaultOptions()}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Automatic regex-pattern discovery for columns of text values.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Values, "list", "l", nil, "column values to profile (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the profile to (default stdout)"),
		flagSet.StringVarP(&opts.Format, "format", "f", "yaml", "output format (yaml, json)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display colprofile version"),
	)

	flagSet.CreateGroup("profile", "Profile",
		flagSet.IntVarP(&opts.Profile.MaxClusters, "max-clusters", "mc", opts.Profile.MaxClusters, "upper bound on surviving clusters"),
		flagSet.StringVarP(&minCoverage, "min-coverage", "cov", "", "drop patterns below this coverage (default 0.01)"),
		flagSet.IntVarP(&opts.Profile.EnumThreshold, "enum-threshold", "et", opts.Profile.EnumThreshold, "max distinct values before generalizing at a position"),
		flagSet.BoolVarP(&opts.Profile.DetectAnomalies, "detect-anomalies", "da", opts.Profile.DetectAnomalies, "populate the anomalies list"),
		flagSet.IntVarP(&opts.Profile.MinClusterSize, "min-cluster-size", "mcs", opts.Profile.MinClusterSize, "clusters smaller than this are dropped"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `colprofile options file (default '$HOME/.config/colprofile/config.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}
	loadFileConfig(opts.Config, &opts.Profile)

	if minCoverage != "" {
		v, err := strconv.ParseFloat(minCoverage, 64)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse min-coverage: %s\n", err)
		}
		opts.Profile.MinCoverage = v
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		if len(opts.Values) == 0 {
			opts.Values = strings.Fields(string(bin))
		}
	}

	if len(opts.Values) == 0 {
		gologger.Fatal().Msgf("colprofile: no input values found")
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
