// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"dialcodes-server/commons"
	"dialcodes-server/commons/dialcode"
	"dialcodes-server/commons/matcher"
	"dialcodes-server/datasets"
	"dialcodes-server/quiz"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	configPath string
	dataDir    string
	cfg        *commons.Config
	store      *datasets.Store
}

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "dialcli",
		Short:         "Look up and practise phone dial codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := commons.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.dataDir != "" {
				cfg.Datasets.Dir = opts.dataDir
			}
			store, err := datasets.NewStore(cfg.Datasets.Dir, cfg.Datasets.CacheSize)
			if err != nil {
				return err
			}
			opts.cfg, opts.store = cfg, store
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding <country>.json datasets")
	rootCmd.PersistentFlags().String("env-file", "", "file with KEY=value environment overrides")

	rootCmd.AddCommand(createLookupCmd(opts))
	rootCmd.AddCommand(createQuizCmd(opts))
	rootCmd.AddCommand(createCountriesCmd(opts))
	rootCmd.AddCommand(createImagesCmd(opts))
	return rootCmd
}

// createLookupCmd mirrors the three ways of searching: interactively, a
// code in the default country, or an explicit country and code.
func createLookupCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [country] [code]",
		Short: "Look up a dial code",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := opts.cfg.Datasets.DefaultCountry
			var code string
			switch len(args) {
			case 1:
				code = args[0]
			case 2:
				country, code = args[0], args[1]
			}

			bundle, err := opts.store.Load(country)
			if err != nil {
				return err
			}
			if code == "" {
				return interactiveLookup(cmd.InOrStdin(), cmd.OutOrStdout(), bundle)
			}
			printLookup(cmd.OutOrStdout(), bundle, code)
			return nil
		},
	}
}

func interactiveLookup(in io.Reader, out io.Writer, bundle *datasets.Bundle) error {
	fmt.Fprintln(out, "Interactive search (type q to quit)")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Code (%s xxx): ", bundle.Dataset.CountryCode)
		if !scanner.Scan() {
			return scanner.Err()
		}
		code := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(code) {
		case "q", "quit", "exit":
			fmt.Fprintln(out, "Stopping search.")
			return nil
		case "":
			continue
		}
		printLookup(out, bundle, code)
	}
}

func printLookup(out io.Writer, bundle *datasets.Bundle, code string) {
	ds := bundle.Dataset
	key, entry := bundle.Index.Resolve(dialcode.TrimCountryCode(code, ds.CountryCode))
	if entry == nil {
		fmt.Fprintf(out, "Code %s not found.\n\n", strings.TrimSpace(code))
		return
	}
	fmt.Fprintf(out, "%s %s:\n", ds.CountryCode, key)
	fmt.Fprintf(out, "  Cities: %s\n", strings.Join(entry.PrimaryCities, ", "))
	fmt.Fprintf(out, "  Regions: %s\n", strings.Join(entry.Regions, ", "))
	if entry.Notes != "" {
		fmt.Fprintf(out, "  Notes: %s\n", entry.Notes)
	}
	fmt.Fprintln(out)
}

func createQuizCmd(opts *cliOptions) *cobra.Command {
	var (
		country     string
		rounds      int
		seed        uint64
		difficulty  string
		regionGroup string
	)
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Play a dial code quiz in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if country == "" {
				country = opts.cfg.Datasets.DefaultCountry
			}
			if rounds <= 0 {
				rounds = opts.cfg.Quiz.Rounds
			}
			bundle, err := opts.store.Load(country)
			if err != nil {
				return err
			}

			picker := quiz.NewRandomPicker()
			if cmd.Flags().Changed("seed") {
				picker = quiz.NewPicker(seed)
			}
			console := quiz.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), picker,
				matcher.NewMatcher(opts.cfg.Quiz.Synonyms))
			_, err = console.Run(bundle.Index, rounds, quiz.Filter{
				Difficulty:  difficulty,
				RegionGroup: regionGroup,
			})
			return err
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "dataset to draw questions from")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of questions")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for a reproducible quiz")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only ask questions of this difficulty")
	cmd.Flags().StringVar(&regionGroup, "region-group", "", "only ask questions from this region group")
	return cmd
}

func createCountriesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := datasets.AvailableCountries(opts.store.Dir())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tCOUNTRY\tDATASET\tPREFIX\tCODES")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%d\n",
					info.Filename, info.Flag, info.GroupLabel, info.DatasetDisplayLabel, info.CountryCode, info.Count)
			}
			return w.Flush()
		},
	}
}

func createImagesCmd(opts *cliOptions) *cobra.Command {
	var country, mapsDir string
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Check that every region has a map image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if country == "" {
				country = opts.cfg.Datasets.DefaultCountry
			}
			if mapsDir == "" {
				mapsDir = filepath.Join(opts.cfg.Server.StaticDir, "maps", strings.ToLower(country))
			}
			bundle, err := opts.store.Load(country)
			if err != nil {
				return err
			}
			if _, err := os.Stat(mapsDir); err != nil {
				return fmt.Errorf("maps directory: %w", err)
			}

			report := datasets.CheckRegionImages(bundle.Dataset, mapsDir)
			printImageReport(cmd.OutOrStdout(), country, report)
			return nil
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "dataset to check")
	cmd.Flags().StringVar(&mapsDir, "maps-dir", "", "directory with region .png maps")
	return cmd
}

func printImageReport(out io.Writer, country string, report datasets.ImageReport) {
	fmt.Fprintf(out, "Image check for %s\n", country)
	fmt.Fprintf(out, "Images directory: %s\n", report.ImagesDir)
	fmt.Fprintf(out, "Entries: %d\n", report.Entries)
	fmt.Fprintf(out, "PNG files: %d\n\n", report.PNGFiles)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, check := range report.Checked {
		status := "missing"
		if check.Exists {
			status = "ok"
		}
		fmt.Fprintf(w, "  %s\t-> %s\t%s\n", check.Region, check.Filename, status)
	}
	w.Flush()

	if len(report.Missing) == 0 {
		fmt.Fprintln(out, "\nEvery region has an image.")
		return
	}
	fmt.Fprintf(out, "\nMissing %d images:\n", len(report.Missing))
	for _, name := range report.Missing {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}
