package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"housenumber-audit/core/logger"
	"housenumber-audit/core/reconcile"
	"housenumber-audit/core/reference"
	"housenumber-audit/core/relations"
	"housenumber-audit/core/storage"
	"housenumber-audit/core/workspace"

	"go.uber.org/zap"
)

// Options wires a Service. History and Storage are optional.
type Options struct {
	Workspace     workspace.Config
	ReferencePath string
	Store         *reference.Store
	Resolver      *relations.Resolver
	History       *History
	Storage       storage.Client
	Bucket        string
	Logger        *zap.Logger
}

// Service produces house-number reports for relations.
type Service struct {
	workspace     workspace.Config
	referencePath string
	store         *reference.Store
	resolver      *relations.Resolver
	history       *History
	client        storage.Client
	bucket        string
	logger        *zap.Logger
}

// NewService creates a new report service.
func NewService(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		workspace:     opts.Workspace,
		referencePath: opts.ReferencePath,
		store:         opts.Store,
		resolver:      opts.Resolver,
		history:       opts.History,
		client:        opts.Storage,
		bucket:        opts.Bucket,
		logger:        log,
	}
}

// WriteReferenceList writes the reference house numbers of every OSM
// street of the relation to its .lst file and returns the number of
// entries written.
func (s *Service) WriteReferenceList(ctx context.Context, relation string) (int, error) {
	log := logger.WithRelation(s.logger, relation)

	if _, err := s.resolver.Relation(relation); err != nil {
		return 0, err
	}

	cache, err := s.store.Get(ctx, s.referencePath)
	if err != nil {
		return 0, fmt.Errorf("failed to load reference: %w", err)
	}

	streets, err := s.streets(relation)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{})
	var lines []string
	for _, street := range streets {
		numbers, err := reference.HouseNumbersOfStreet(cache, s.resolver, street, relation)
		if err != nil {
			return 0, err
		}
		for _, line := range numbers {
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)

	path := s.workspace.ReferenceListPath(relation)
	if err := workspace.WriteLines(path, lines); err != nil {
		return 0, err
	}

	log.Info("Reference list written",
		zap.String("path", path),
		zap.Int("streets", len(streets)),
		zap.Int("entries", len(lines)))
	return len(lines), nil
}

// MissingHousenumbers compares the OSM and reference house numbers of a
// relation. The reference list is generated first when it does not exist.
func (s *Service) MissingHousenumbers(ctx context.Context, relation string) (*reconcile.Report, error) {
	log := logger.WithRelation(s.logger, relation)

	if _, err := s.resolver.Relation(relation); err != nil {
		return nil, err
	}

	streetRows, err := workspace.ReadTable(s.workspace.StreetsPath(relation))
	if err != nil {
		return nil, err
	}
	houseNumberRows, err := workspace.ReadTable(s.workspace.HouseNumbersPath(relation))
	if err != nil {
		return nil, err
	}

	referenceLines, err := workspace.ReadLines(s.workspace.ReferenceListPath(relation))
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("Reference list missing, generating it")
		if _, err := s.WriteReferenceList(ctx, relation); err != nil {
			return nil, err
		}
		referenceLines, err = workspace.ReadLines(s.workspace.ReferenceListPath(relation))
	}
	if err != nil {
		return nil, err
	}

	policy, refStreets, err := s.resolver.AcceptancePolicy(relation)
	if err != nil {
		return nil, err
	}

	report := reconcile.Diff(reconcile.Input{
		StreetRows:      streetRows,
		HouseNumberRows: houseNumberRows,
		ReferenceLines:  referenceLines,
		Policy:          policy,
		RefStreets:      refStreets,
	})

	log.Info("Report ready",
		zap.Int("streets", report.Summary.Streets),
		zap.Int("suspicious", report.Summary.SuspiciousStreets),
		zap.Int("missing", report.Summary.MissingNumbers),
		zap.Float64("percent", report.Summary.Percent))
	if dropped := report.Diagnostics.Dropped(); dropped > 0 {
		log.Debug("House number tokens dropped",
			zap.Int("no_digits", report.Diagnostics.NoDigits),
			zap.Int("out_of_range", report.Diagnostics.OutOfRange))
	}
	return report, nil
}

// Record stores a report in the history database. It does nothing when
// no history is configured.
func (s *Service) Record(ctx context.Context, relation string, rep *reconcile.Report) (*ReportRun, error) {
	if s.history == nil {
		s.logger.Debug("History not configured, run not recorded")
		return nil, nil
	}
	run, err := s.history.Save(ctx, relation, rep)
	if err != nil {
		return nil, err
	}
	logger.WithRelation(s.logger, relation).Info("Run recorded", zap.String("run_id", run.ID))
	return run, nil
}

// Publish uploads a report as JSON to reports/<relation>.json. It returns
// the object name, or "" when no storage is configured.
func (s *Service) Publish(ctx context.Context, relation string, rep *reconcile.Report) (string, error) {
	if s.client == nil {
		s.logger.Debug("Storage not configured, report not published")
		return "", nil
	}
	object, err := Publish(ctx, s.client, s.bucket, relation, rep)
	if err != nil {
		return "", err
	}
	logger.WithRelation(s.logger, relation).Info("Report published",
		zap.String("bucket", s.bucket),
		zap.String("object", object))
	return object, nil
}

func (s *Service) streets(relation string) ([]string, error) {
	streetRows, err := workspace.ReadTable(s.workspace.StreetsPath(relation))
	if err != nil {
		return nil, err
	}
	houseNumberRows, err := workspace.ReadTable(s.workspace.HouseNumbersPath(relation))
	if err != nil {
		return nil, err
	}
	return reconcile.StreetNames(streetRows, houseNumberRows), nil
}
