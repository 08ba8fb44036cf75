// Package cmd implements the tortuosity command line: it decodes one
// centerline, computes the requested metrics and prints a report.
package cmd

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akmonengine/tortuosity"
	"github.com/akmonengine/tortuosity/polyline"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TORTUOSITY"

// Version is overridden at build time with -ldflags "-X ...cmd.Version=..."
var Version = "dev"

// RootCmd computes the metrics of the polyline given as argument, or read
// from stdin
var RootCmd = &cobra.Command{
	Use:   "tortuosity [file]",
	Short: "Compute the tortuosity metrics of a 3-D centerline",
	Long: `
Compute the Distance Metric, Inflection Count Metric and Sum Of Angles Metric
of an ordered 3-D polyline, read as GeoJSON LineString, WKT LINESTRING Z or
plain text (one "x y z" point per line).
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening polyline")
			}
			defer f.Close()
			in = f
		}
		return run(rootConf, in, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of tortuosity",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tortuosity %s\n", Version)
	},
}

var rootConf = viper.New()

func init() {
	registerFlags(RootCmd)
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	bindConfig(rootConf, RootCmd)
	RootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		rootConf.SetConfigFile(cfg)
		if err := rootConf.ReadInConfig(); err != nil {
			glog.Fatalf("Reading config %s: %v", cfg, err)
		}
	})
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("measure", "all",
		"Comma separated metrics to compute: distance (dm), inflection-count (icm), "+
			"inflection-points (ip), sum-of-angles (soam) or all.")
	flags.Float64("epsilon", tortuosity.DEFAULT_EPSILON,
		"Norm below which accelerations, segments and cross products are null.")
	flags.String("format", string(polyline.FORMAT_AUTO),
		"Input format, one of [auto, geojson, wkt, text].")
	flags.String("output", "json", "Report format, one of [json, text].")
}

// bindConfig makes every flag of cmd readable through conf, overridable with
// TORTUOSITY_<FLAG> environment variables
func bindConfig(conf *viper.Viper, cmd *cobra.Command) {
	conf.BindPFlags(cmd.Flags())
	conf.BindPFlags(cmd.PersistentFlags())
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
}

// Execute runs the root command, it is called by main.main()
func Execute() {
	goflag.CommandLine.Parse([]string{})
	defer glog.Flush()

	if err := RootCmd.Execute(); err != nil {
		glog.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options reads the engine options from conf
func options(conf *viper.Viper) (tortuosity.Options, error) {
	measure, err := tortuosity.ParseMeasure(conf.GetString("measure"))
	if err != nil {
		return tortuosity.Options{}, err
	}
	return tortuosity.Options{
		Measure: measure,
		Epsilon: conf.GetFloat64("epsilon"),
	}, nil
}

func run(conf *viper.Viper, in io.Reader, out io.Writer) error {
	opts, err := options(conf)
	if err != nil {
		return err
	}
	format, err := polyline.ParseFormat(conf.GetString("format"))
	if err != nil {
		return err
	}
	writer, err := reportWriter(conf.GetString("output"))
	if err != nil {
		return err
	}

	points, err := polyline.Decode(in, format)
	if err != nil {
		return err
	}
	glog.V(1).Infof("Computing %v on %d points (epsilon=%g)", opts.Measure, len(points), opts.Epsilon)

	result, err := tortuosity.Compute(points, opts)
	if err != nil {
		var computationErr *tortuosity.ComputationError
		if errors.As(err, &computationErr) {
			glog.Errorf("Partial metrics: DM=%g ICM=%g SOAM=%g",
				computationErr.Result.DistanceMetric.Float64(),
				computationErr.Result.InflectionCountMetric.Float64(),
				computationErr.Result.SumOfAnglesMetric.Float64())
		}
		return err
	}

	return writer(out, newReport(opts.Measure, len(points), result))
}
