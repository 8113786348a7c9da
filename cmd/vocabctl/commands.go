package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/vocab-catalog/internal/app"
	"github.com/heartmarshall/vocab-catalog/internal/app/importer"
	"github.com/heartmarshall/vocab-catalog/internal/config"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
	"github.com/heartmarshall/vocab-catalog/internal/service/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/transport/rest"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "vocabctl",
		Short:        "Manage the vocabulary catalog from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("CONFIG_PATH", configPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config YAML (overrides CONFIG_PATH)")

	root.AddCommand(newImportCmd(), newGetCmd(), newDeriveIDCmd())
	return root
}

// session is an opened service plus the teardown of its storage.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	svc    *vocabulary.Service
	closer func() error
}

func open(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		log:    logger,
		svc:    vocabulary.NewService(logger, storage.Vocabulary),
		closer: storage.Close,
	}, nil
}

func newImportCmd() *cobra.Command {
	var (
		dryRun      bool
		concurrency int
		source      string
		target      string
	)

	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Import every JSON/YAML vocabulary file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closer()

			cfg := importer.Config{
				Dir:           args[0],
				DryRun:        dryRun,
				Concurrency:   s.cfg.Vocabulary.ImportConcurrency,
				DefaultSource: s.cfg.Vocabulary.DefaultSourceLanguage,
				DefaultTarget: s.cfg.Vocabulary.DefaultTargetLanguage,
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if source != "" {
				cfg.DefaultSource = source
			}
			if target != "" {
				cfg.DefaultTarget = target
			}

			res, err := importer.Run(cmd.Context(), cfg, s.svc, s.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "files=%d items=%d saved=%d validated=%d errors=%d\n",
				res.FilesProcessed, res.Items, res.Saved, res.Validated, res.Errors)
			if res.Errors > 0 {
				return fmt.Errorf("%d item(s) failed", res.Errors)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and derive ids without writing")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel saves (default from config)")
	cmd.Flags().StringVar(&source, "source", "", "source language for items that omit it")
	cmd.Flags().StringVar(&target, "target", "", "target language for items that omit it")
	return cmd
}

func newGetCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get <source> <target> <id>",
		Short: "Print a stored vocabulary item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closer()

			v, err := s.svc.Get(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printDTO(cmd.OutOrStdout(), rest.ToDTO(v.Snapshot()), format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func newDeriveIDCmd() *cobra.Command {
	var (
		snap      domain.VocabularySnapshot
		pos       string
		infinitiv string
		tense     string
		person    string
	)

	cmd := &cobra.Command{
		Use:   "derive-id",
		Short: "Print the id an item would be stored under",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePartOfSpeech(pos)
			if err != nil {
				return err
			}
			snap.PartOfSpeech = p
			if infinitiv != "" || tense != "" || person != "" {
				snap.PartOfSpeech = domain.PartOfSpeechVerb
				snap.Verb = &domain.VerbDetails{Infinitiv: infinitiv, Tense: tense, Person: person}
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.DeriveID(snap))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&snap.SourceLanguage, "source", "", "source language")
	f.StringVar(&snap.TargetLanguage, "target", "", "target language")
	f.StringVar(&snap.Word, "word", "", "word")
	f.StringVar(&pos, "pos", "", "part of speech")
	f.StringVar(&infinitiv, "infinitiv", "", "infinitive of a conjugated verb form")
	f.StringVar(&tense, "tense", "", "tense of a conjugated verb form")
	f.StringVar(&person, "person", "", "person of a conjugated verb form")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func printDTO(w io.Writer, dto rest.VocabularyDTO, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		enc.SetIndent(2)
		return enc.Encode(dto)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
