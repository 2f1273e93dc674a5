package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/msan126/scaffoldmaker"
	"github.com/msan126/scaffoldmaker/mesh"
	"github.com/msan126/scaffoldmaker/tubemesh"
)

// loadOptions returns the options of a parameter set overlaid by the config file,
// the environment and explicit key=value overrides, in increasing priority.
func (a *app) loadOptions(set string, overrides map[string]string) (scaffoldmaker.Options, error) {
	o, ok := scaffoldmaker.DefaultOptions(set)
	if !ok {
		return o, fmt.Errorf("unknown parameter set %q, want one of %s",
			set, strings.Join(scaffoldmaker.ParameterSetNames(), ", "))
	}
	known := make(map[string]bool)
	for _, opt := range o.List() {
		a.v.SetDefault(opt.Key, opt.Value)
		known[opt.Key] = true
	}
	for k, v := range overrides {
		if !known[k] {
			return o, fmt.Errorf("unknown option %q", k)
		}
		a.v.Set(k, v)
	}
	if err := a.v.Unmarshal(&o); err != nil {
		return o, fmt.Errorf("decode options: %w", err)
	}
	return o, nil
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q", format)
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		set       string
		overrides map[string]string
		format    string
		svgFile   string
		color     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the mesh and print a report",
		Long: `Generates the colon segment mesh and prints a report with the checked options,
the corrections made to them, node and element counts, annotation group sizes and
the centroid, area and outer perimeter of every ring.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.loadOptions(set, overrides)
			if err != nil {
				return err
			}
			fixes := o.Check()
			for _, fix := range fixes {
				a.logger.Info("corrected option", zap.String("key", fix.Key), zap.Float64("old", fix.Old), zap.Float64("new", fix.New))
			}

			region := mesh.NewRegion()
			c := scaffoldmaker.ColonSegment{Logger: a.logger}
			res, err := c.GenerateBaseMesh(region, &o)
			if err != nil {
				return err
			}
			report, err := scaffoldmaker.NewReport(o, fixes, res)
			if err != nil {
				return err
			}
			if svgFile != "" {
				if err := writeSvgFile(svgFile, res, color); err != nil {
					return err
				}
				a.logger.Debug("wrote rings", zap.String("file", svgFile))
			}
			return encode(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().StringVar(&set, "parameter-set", "Default", "named parameter set")
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "option overrides as key=value")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "report format: yaml or json")
	cmd.Flags().StringVar(&svgFile, "svg", "", "write the cross-section rings to an SVG file")
	cmd.Flags().StringVar(&color, "color", "", "SVG stroke color (#rrggbb)")
	return cmd
}

func writeSvgFile(name string, res *tubemesh.Result, color string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return scaffoldmaker.WriteSvg(f, scaffoldmaker.Rings(res), color)
}

func newOptionsCommand(a *app) *cobra.Command {
	var (
		set    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the options of a parameter set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.loadOptions(set, nil)
			if err != nil {
				return err
			}
			list := o.List()
			if format != "text" {
				return encode(cmd.OutOrStdout(), format, list)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", scaffoldmaker.Name, set)
			for _, opt := range list {
				fmt.Fprintf(w, "  %s: %v\n", opt.Name, opt.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&set, "parameter-set", "Default", "named parameter set")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml or json")
	return cmd
}
