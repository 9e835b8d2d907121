// Package main provides the lyssa command line tool for generating
// Service Provider Keys and License Key Packs for Remote Desktop
// Services licensing.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yutian0/lyssa"
	"github.com/yutian0/lyssa/license"
)

const separator = "============================================================"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(lyssa.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var (
		productID   string
		existingSPK string
		count       int
		licenseCode string
		listTypes   bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "lyssa",
		Short: "Generate RDS license server ids and license key packs",
		Long: `lyssa generates the two product keys used by Remote Desktop Services
licensing: the Service Provider Key (License Server ID) bound to a
Product ID, and the License Key Pack carrying a license count and type.

Examples:
  # Generate SPK only
  lyssa --pid "00490-92005-99454-AT527"

  # Generate both SPK and LKP
  lyssa --pid "00490-92005-99454-AT527" --count 1234 --license "029_10_2"

  # Use an existing SPK and only generate the LKP
  lyssa --pid "00490-92005-99454-AT527" --spk "TCQRB-493G9-YJ7JG-9GD3T-H2M82-346WV-3QK6V" --count 1234 --license "029_10_2"

  # List all supported license types
  lyssa --list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTypes {
				printCatalog(cmd)
				return nil
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().Timestamp().Logger().Level(zerolog.WarnLevel)
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}

			if productID == "" {
				return errors.New("--pid is required for key generation")
			}
			if existingSPK != "" && (count == 0 || licenseCode == "") {
				return errors.New("--spk requires both --count and --license")
			}
			if (count == 0) != (licenseCode == "") {
				return errors.New("--count and --license must be provided together")
			}

			var name string
			if licenseCode != "" {
				var ok bool
				if name, ok = license.Lookup(licenseCode); !ok {
					return fmt.Errorf("unknown license type %q, use --list to see all supported types", licenseCode)
				}
			}

			cmd.Printf("Generating keys for PID: %s\n\n", productID)
			logger.Debug().Str("pid", productID).Str("spk", existingSPK).Msg("processing request")

			res, err := lyssa.Process(lyssa.Request{
				PID:     productID,
				SPK:     existingSPK,
				Count:   count,
				License: licenseCode,
			})
			if err != nil {
				logger.Error().Err(err).Msg("key generation failed")
				return err
			}

			cmd.Println(separator)
			if existingSPK != "" {
				cmd.Printf("Validated SPK:\n%s\n", res.SPK)
			} else {
				cmd.Printf("License Server ID (SPK):\n%s\n", res.SPK)
			}
			cmd.Println(separator)

			if res.LKP != "" {
				cmd.Printf("\nLicense Type: %s\n", name)
				cmd.Printf("License Count: %d\n\n", count)
				cmd.Println(separator)
				cmd.Printf("License Key Pack (LKP):\n%s\n", res.LKP)
				cmd.Println(separator)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "pid", "", "product id, e.g. 00490-92005-99454-AT527")
	cmd.Flags().StringVar(&existingSPK, "spk", "", "existing License Server ID (SPK) to validate and reuse")
	cmd.Flags().IntVar(&count, "count", 0, "license count (1-9999), generates an LKP together with --license")
	cmd.Flags().StringVar(&licenseCode, "license", "", "license version and type, e.g. 029_10_2")
	cmd.Flags().BoolVar(&listTypes, "list", false, "list all supported license types")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func printCatalog(cmd *cobra.Command) {
	cmd.Println("\nSupported License Version and Type:")
	cmd.Println()
	for _, e := range license.Catalog {
		cmd.Printf("  %-12s - %s\n", e.Code, e.Name)
	}
	cmd.Println()
}
