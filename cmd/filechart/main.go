// Package main provides the CLI entry point for filechart.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ukaji3/filechart-go/pkg/filechart"
	"github.com/ukaji3/filechart-go/pkg/filechart/models"
	"github.com/ukaji3/filechart-go/pkg/filechart/output"
	"github.com/ukaji3/filechart-go/pkg/filechart/parser"
	"github.com/ukaji3/filechart-go/pkg/filechart/render"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "filechart [input]",
		Short: "Turn tabular files into chart data",
		Long: `filechart reads a tabular file (` + strings.Join(parser.Extensions(), " ") + `),
assigns columns to chart roles and writes chart-ready JSON or an HTML chart.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args[0])
		},
	}
	bindFlags(cmd, v)
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(cmd *cobra.Command, cfg *Config, inputPath string) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	session, err := filechart.NewSession(cfg.Options, logger)
	if err != nil {
		return err
	}

	ds, err := session.UploadFile(cmd.Context(), inputPath)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if ds.Truncated {
		logger.Warn("dataset truncated",
			zap.Int("rows", ds.Len()),
			zap.Int("total_rows", ds.TotalRows),
		)
	}

	if cfg.Dataset != "" {
		data, err := output.DatasetToJSON(ds, cfg.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(cfg.Dataset, data, 0644); err != nil {
			return fmt.Errorf("failed to write dataset: %w", err)
		}
	}

	if _, err := session.SetChartType(cfg.Chart); err != nil {
		return err
	}
	if err := assignRoles(session, ds, cfg); err != nil {
		return err
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case "html":
		r := render.New(render.Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
		err = session.Render(&buf, r)
	default:
		err = writeJSON(&buf, session, cfg.Pretty)
	}
	if err != nil {
		if errors.Is(err, filechart.ErrNotReady) {
			return fmt.Errorf("roles incomplete for %s chart (assigned %s)", cfg.Chart, describeRoles(session.Roles()))
		}
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}

func assignRoles(session *filechart.Session, ds *models.Dataset, cfg *Config) error {
	if cfg.Quick {
		session.Quick()
		return nil
	}
	if err := cfg.Roles.Validate(ds.Columns); err != nil {
		return fmt.Errorf("invalid roles: %w", err)
	}
	if cfg.Roles.X != "" {
		session.Select(models.RoleX, cfg.Roles.X)
	}
	if cfg.Roles.Label != "" {
		session.Select(models.RoleLabel, cfg.Roles.Label)
	}
	session.SetY(cfg.Roles.Y...)
	return nil
}

func writeJSON(w io.Writer, session *filechart.Session, pretty bool) error {
	data, err := session.ChartData()
	if err != nil {
		return err
	}
	if data == nil {
		return filechart.ErrNotReady
	}
	b, err := output.ToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func describeRoles(roles models.RoleAssignment) string {
	parts := []string{
		"x=" + roles.X,
		"label=" + roles.Label,
		"y=[" + strings.Join(roles.Y, ",") + "]",
	}
	return strings.Join(parts, " ")
}
