// Package importer loads vocabulary files from a directory into the catalog.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/docstore"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
	"github.com/heartmarshall/vocab-catalog/internal/transport/rest"
)

// Creator saves new vocabulary items.
type Creator interface {
	Create(ctx context.Context, snap domain.VocabularySnapshot) (*domain.Vocabulary, error)
}

// Config controls one import run.
type Config struct {
	Dir           string
	DryRun        bool
	Concurrency   int
	DefaultSource string
	DefaultTarget string
}

// Result holds import statistics.
type Result struct {
	FilesProcessed int
	Items          int
	Saved          int
	Validated      int
	Errors         int
}

var extensions = []string{".json", ".yaml", ".yml"}

// Run reads every *.json, *.yaml and *.yml file in cfg.Dir. A file holds one
// item or a list of items. Items are saved concurrently, at most
// cfg.Concurrency at a time. Per-item failures are logged and counted; only a
// canceled context or an unreadable directory aborts the run.
//
// In dry-run mode items are built and their ids derived, nothing is written.
func Run(ctx context.Context, cfg Config, svc Creator, log *slog.Logger) (Result, error) {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return Result{}, fmt.Errorf("read import dir: %w", err)
	}

	var (
		result Result
		mu     sync.Mutex
	)
	count := func(f func(r *Result)) {
		mu.Lock()
		f(&result)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))

	for _, e := range entries {
		if e.IsDir() || !slices.Contains(extensions, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		path := filepath.Join(cfg.Dir, e.Name())
		count(func(r *Result) { r.FilesProcessed++ })

		items, err := readFile(path)
		if err != nil {
			log.Error("read file", slog.String("path", path), slog.String("error", err.Error()))
			count(func(r *Result) { r.Errors++ })
			continue
		}

		for i, dto := range items {
			if dto.SourceLanguage == "" {
				dto.SourceLanguage = cfg.DefaultSource
			}
			if dto.TargetLanguage == "" {
				dto.TargetLanguage = cfg.DefaultTarget
			}
			count(func(r *Result) { r.Items++ })

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				id, err := importOne(gctx, svc, dto, cfg.DryRun)
				if err != nil {
					log.Error("import item",
						slog.String("path", path),
						slog.Int("index", i),
						slog.String("word", dto.Word),
						slog.String("error", err.Error()),
					)
					count(func(r *Result) { r.Errors++ })
					return nil
				}
				if cfg.DryRun {
					log.Debug("validated", slog.String("id", id))
					count(func(r *Result) { r.Validated++ })
				} else {
					count(func(r *Result) { r.Saved++ })
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	log.Info("import complete",
		slog.Int("files", result.FilesProcessed),
		slog.Int("items", result.Items),
		slog.Int("saved", result.Saved),
		slog.Int("validated", result.Validated),
		slog.Int("errors", result.Errors),
		slog.Bool("dry_run", cfg.DryRun),
	)
	return result, nil
}

func importOne(ctx context.Context, svc Creator, dto rest.VocabularyDTO, dryRun bool) (string, error) {
	snap, err := rest.FromDTO(dto)
	if err != nil {
		return "", err
	}
	if dryRun {
		return validateOnly(snap)
	}
	saved, err := svc.Create(ctx, snap)
	if err != nil {
		return "", err
	}
	return saved.ID(), nil
}

// validateOnly runs the checks a save would run, up to the storage
// boundary, and returns the id the item would be stored under.
func validateOnly(snap domain.VocabularySnapshot) (string, error) {
	v, err := domain.NewVocabularyFrom(snap)
	if err != nil {
		return "", err
	}
	v.MarkDirty(domain.AllFields)
	if strings.TrimSpace(v.ID()) == "" {
		v.SetID(v.DeriveID())
	}
	if _, err := docstore.FillAndValidate(v); err != nil {
		return "", err
	}
	return v.ID(), nil
}

// readFile decodes a single item or a list of items. JSON files go through
// encoding/json, everything else through yaml.v3.
func readFile(path string) ([]rest.VocabularyDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var items []rest.VocabularyDTO
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, fmt.Errorf("decode json list: %w", err)
			}
			return items, nil
		}
		var item rest.VocabularyDTO
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return []rest.VocabularyDTO{item}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var items []rest.VocabularyDTO
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode yaml list: %w", err)
		}
		return items, nil
	}
	var item rest.VocabularyDTO
	if err := root.Decode(&item); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return []rest.VocabularyDTO{item}, nil
}
