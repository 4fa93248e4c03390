package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/filechart-go/pkg/filechart"
	"github.com/ukaji3/filechart-go/pkg/filechart/chart"
	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// configFileName is the config file searched for without --config (filechart.yaml).
const configFileName = "filechart"

// envPrefix prefixes environment overrides, e.g. FILECHART_TYPE=line.
const envPrefix = "FILECHART"

// Config holds the resolved CLI settings.
type Config struct {
	Chart   models.ChartType
	Roles   models.RoleAssignment
	Quick   bool
	Options filechart.Options

	Format  string
	Output  string
	Dataset string
	Pretty  bool
	Title   string
	Width   string
	Height  string
	Verbose bool
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	f.String("config", "", "Config file (default: ./filechart.yaml or ~/.config/filechart/filechart.yaml)")
	f.StringP("type", "t", string(models.ChartBar), "Chart type: bar, line, pie, radar, doughnut, polarArea, scatter, bubble")
	f.String("x", "", "Column for the x axis")
	f.String("label", "", "Column for slice labels (pie, doughnut, polarArea)")
	f.StringSlice("y", nil, "Value column(s); repeat or comma-separate")
	f.Bool("quick", false, "Use the first column as x and the rest as y")
	f.Bool("preview", false, "Load only the first rows of the file")
	f.Int("preview-rows", 10, "Row cap in preview mode")
	f.Bool("adaptive", false, "Adapt bar and line axes to column types")
	f.Bool("allow-x-in-y", false, "Allow the x column to also be a y column")
	f.String("coordinate-invalid", "drop", "Non-numeric scatter/bubble rows: drop or zero")
	f.Int64("seed", 0, "Color seed for reproducible output (0: random)")
	f.StringP("format", "f", "json", "Output format: json or html")
	f.StringP("output", "o", "", "Output file path (default: stdout)")
	f.String("dataset", "", "Also write the normalized dataset as JSON to this path")
	f.Bool("pretty", false, "Pretty-print JSON output")
	f.String("title", "", "Chart title (html)")
	f.String("width", "", "Chart width (html, default 100%)")
	f.String("height", "", "Chart height (html, default 500px)")
	f.BoolP("verbose", "v", false, "Enable debug logging")

	_ = v.BindPFlags(f)
}

// loadConfig resolves settings from flags, the config file and FILECHART_* variables.
func loadConfig(v *viper.Viper) (*Config, error) {
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "filechart"))
		}
		v.AddConfigPath(".")
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	chartType, err := models.ParseChartType(v.GetString("type"))
	if err != nil {
		return nil, err
	}

	opts := filechart.DefaultOptions()
	if v.GetBool("preview") {
		opts.Mode = filechart.ModePreview
	}
	opts.PreviewRows = v.GetInt("preview-rows")
	opts.AdaptiveAxes = v.GetBool("adaptive")
	opts.AllowXInY = v.GetBool("allow-x-in-y")
	opts.ColorSeed = v.GetInt64("seed")
	switch strings.ToLower(v.GetString("coordinate-invalid")) {
	case "drop":
		opts.CoordinateInvalid = chart.DropInvalid
	case "zero":
		opts.CoordinateInvalid = chart.ZeroInvalid
	default:
		return nil, fmt.Errorf("invalid coordinate-invalid: %s (must be drop or zero)", v.GetString("coordinate-invalid"))
	}

	format := strings.ToLower(v.GetString("format"))
	if format != "json" && format != "html" {
		return nil, fmt.Errorf("invalid format: %s (must be json or html)", format)
	}

	return &Config{
		Chart: chartType,
		Roles: models.RoleAssignment{
			X:     v.GetString("x"),
			Label: v.GetString("label"),
			Y:     columnList(v.Get("y")),
		},
		Quick:   v.GetBool("quick"),
		Options: opts,
		Format:  format,
		Output:  v.GetString("output"),
		Dataset: v.GetString("dataset"),
		Pretty:  v.GetBool("pretty"),
		Title:   v.GetString("title"),
		Width:   v.GetString("width"),
		Height:  v.GetString("height"),
		Verbose: v.GetBool("verbose"),
	}, nil
}

// columnList reads a column list given as flag values, a config file list or
// a comma-separated env value such as FILECHART_Y=a,b.
func columnList(raw any) []string {
	cols := lo.FlatMap(cast.ToStringSlice(raw), func(item string, _ int) []string {
		return strings.Split(item, ",")
	})
	cols = lo.Map(cols, func(c string, _ int) string {
		return strings.TrimSpace(c)
	})
	cols = lo.Compact(cols)
	if len(cols) == 0 {
		return nil
	}
	return cols
}
