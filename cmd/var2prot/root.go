package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/variomics/var2prot/internal/duckdb"
	"github.com/variomics/var2prot/internal/generate"
	"github.com/variomics/var2prot/internal/mart"
	"github.com/variomics/var2prot/internal/output"
	"github.com/variomics/var2prot/internal/variant"
	"github.com/variomics/var2prot/internal/vcf"
	"github.com/variomics/var2prot/internal/vep"
)

type rootOptions struct {
	vcfPath     string
	proteinPath string
	reference   string
	outputPath  string
	cachePath   string
	filterSNP   bool
	filterIndel bool
	filterFS    bool
	workers     int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "var2prot",
		Short:   "Generate mutated protein FASTA from an annotated variant VCF",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Long: `var2prot reads a VEP-annotated VCF file, extracts coding variants,
applies them to their transcripts and writes the resulting candidate
proteins as FASTA.`,
		Example: `  var2prot -v input.vcf -o proteins.fasta
  var2prot -v input.vcf -p hgnc_ids.txt -r GRCh37 -o proteins.fasta
  var2prot -v input.vcf --filter-snp -o proteins.fasta`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.vcfPath, "vcf", "v", "", "Path to the annotated vcf input file ('-' for stdin)")
	cmd.Flags().StringVarP(&opts.proteinPath, "proteins", "p", "", "Path to the gene ID allow-list file (HGNC IDs, one per line)")
	cmd.Flags().StringVarP(&opts.reference, "reference", "r", "GRCh38", "Reference genome used for variant annotation")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Path to the output FASTA file (required)")
	cmd.Flags().StringVar(&opts.cachePath, "cache", defaultCachePath(), "Path to the transcript sequence cache (DuckDB)")
	cmd.Flags().BoolVar(&opts.filterSNP, "filter-snp", false, "Filter SNPs")
	cmd.Flags().BoolVar(&opts.filterIndel, "filter-indel", false, "Filter insertions and deletions (including frameshifts)")
	cmd.Flags().BoolVar(&opts.filterFS, "filter-fs", false, "Filter frameshift INDELs")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Number of classification workers (0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	cmd.MarkFlagRequired("output")

	viper.BindPFlag("reference", cmd.Flags().Lookup("reference"))
	viper.BindPFlag("cache", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))

	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig wires the optional ~/.var2prot.yaml config file into viper.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, no config file
	}

	viper.SetConfigName(".var2prot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "transcripts.duckdb"
	}
	return filepath.Join(home, ".var2prot", "transcripts.duckdb")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	// An unknown reference genome is a configuration error; report it
	// before any input file is opened.
	adapter, err := mart.NewAdapter(viper.GetString("reference"))
	if err != nil {
		return err
	}

	if opts.vcfPath == "" {
		return errors.New("at least a vcf input file has to be provided (--vcf)")
	}

	geneFilter, err := vep.LoadGeneFilter(opts.proteinPath)
	if err != nil {
		return err
	}
	if len(geneFilter) > 0 {
		logger.Info("gene filter loaded", zap.Int("genes", len(geneFilter)))
	}

	parser, err := vcf.NewParser(opts.vcfPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	builder := vep.NewBuilder(geneFilter)
	builder.SetLogger(logger)

	variants, err := builder.BuildAll(parser, viper.GetInt("workers"))
	if err != nil {
		return err
	}
	logger.Info("variants extracted", zap.Int("count", len(variants)))

	var filters []variant.Filter
	if opts.filterSNP {
		filters = append(filters, variant.RemoveSNPs)
	}
	if opts.filterIndel {
		filters = append(filters, variant.RemoveIndels)
	}
	if opts.filterFS {
		filters = append(filters, variant.RemoveFrameshifts)
	}

	variants = variant.Apply(variants, filters...)
	if len(variants) == 0 {
		return errors.New("no variants left after filtering; please refine your filtering criteria")
	}

	store, err := duckdb.Open(viper.GetString("cache"))
	if err != nil {
		return fmt.Errorf("opening transcript cache: %w", err)
	}
	defer store.Close()

	source := duckdb.NewCachingSource(store, adapter)
	source.SetLogger(logger)

	gen := generate.NewGenerator(source)
	gen.SetLogger(logger)

	transcripts, err := gen.Transcripts(cmd.Context(), variants)
	if err != nil {
		return err
	}
	logger.Info("transcripts generated", zap.Int("count", len(transcripts)))

	proteins := gen.Proteins(transcripts)
	if len(proteins) == 0 {
		return errors.New("no proteins could be generated from the remaining variants")
	}

	out, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	writer := output.NewFASTAWriter(out)
	for _, p := range proteins {
		if err := writer.Write(p); err != nil {
			return fmt.Errorf("writing protein: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	logger.Info("proteins written",
		zap.Int("count", len(proteins)),
		zap.String("output", opts.outputPath))

	return nil
}
