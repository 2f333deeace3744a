package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cmmoran/prismaconvert/pkg/action/convert"
	"github.com/cmmoran/prismaconvert/pkg/parser"
)

// viper keys for flags, matching the mapstructure tags on parser.Options
var flagKeys = map[string]string{
	"output":        "output",
	"format":        "format",
	"package":       "package",
	"strict":        "strict",
	"pluralize":     "pluralize",
	"exclude-types": "exclude_types",
	"type-mapping":  "type_mappings",
}

func NewRootCommand() *cobra.Command {
	defaults := parser.NewOptions()

	// convertCmd converts a Prisma 1 datamodel into a Prisma 2 schema
	var convertCmd = &cobra.Command{
		Use:   "prismaconvert <datamodel.graphql>",
		Short: "convert Prisma 1 datamodels",
		Long: `Convert a Prisma 1 datamodel (GraphQL SDL) to a Prisma 2 schema.

NOTE:
  * Concatenate your files into one file or migrate them separately.
  * The path to the datamodel is resolved relative to the working directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := bindFlags(c.Flags()); err != nil {
				return err
			}
			options := parser.NewOptions()
			if err := viper.Unmarshal(options); err != nil {
				return fmt.Errorf("decode options: %w", err)
			}
			options.Input = args[0]

			return convert.Generate(options, c.OutOrStdout())
		},
	}
	if len(version) > 0 {
		convertCmd.Version = version
	}

	convertCmd.PersistentFlags().StringVarP(&level, "level", "l", "warn", "log level (debug, info, warn, error, trace)")
	convertCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")

	convertCmd.Flags().StringP("output", "o", defaults.Output, "output file, - for stdout")
	convertCmd.Flags().StringP("format", "f", defaults.Format, "output format: prisma, yaml or go")
	convertCmd.Flags().StringP("package", "p", defaults.Package, "package name for the go format")
	convertCmd.Flags().Bool("strict", false, "fail on malformed @default/@relation arguments and repeated directives")
	convertCmd.Flags().Bool("pluralize", false, "go format: emit a plural slice type per model")
	convertCmd.Flags().StringSliceP("exclude-types", "t", []string{}, "exclude named types and enums from the output")
	convertCmd.Flags().StringToString("type-mapping", map[string]string{}, "extra type renames, ex: DateTime=Timestamp")

	return convertCmd
}

func bindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
