package connectors

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/portalcheck/internal/connectors/dynamo"
	"github.com/custodia-labs/portalcheck/internal/connectors/filesystem"
	"github.com/custodia-labs/portalcheck/internal/connectors/google"
	"github.com/custodia-labs/portalcheck/internal/connectors/google/sheets"
	"github.com/custodia-labs/portalcheck/internal/connectors/ratelimit"
	"github.com/custodia-labs/portalcheck/internal/connectors/workbook"
	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// Sources groups the inputs of one reconciliation run.
type Sources struct {
	Missing   driven.MissingMerchantSource
	Mapping   driven.PortalMappingSource
	Directory driven.CompanyDirectory
}

// Option configures a Factory.
type Option func(*Factory)

// WithSheetsService uses svc instead of building one from the credentials file.
func WithSheetsService(svc *sheetsapi.Service) Option {
	return func(f *Factory) {
		f.newSheets = func(context.Context) (*sheetsapi.Service, error) { return svc, nil }
	}
}

// WithDynamoClient uses client instead of one built from the AWS default chain.
func WithDynamoClient(client dynamodb.ScanAPIClient) Option {
	return func(f *Factory) {
		f.newDynamo = func(context.Context, dynamo.Config) (dynamodb.ScanAPIClient, error) { return client, nil }
	}
}

// WithLimiters overrides the per-service request limiters.
func WithLimiters(sheetsLimiter, dynamoLimiter *ratelimit.Limiter) Option {
	return func(f *Factory) {
		f.sheetsLimiter = sheetsLimiter
		f.dynamoLimiter = dynamoLimiter
	}
}

// Factory creates sources from settings.
type Factory struct {
	settings domain.Settings

	newSheets func(ctx context.Context) (*sheetsapi.Service, error)
	newDynamo func(ctx context.Context, cfg dynamo.Config) (dynamodb.ScanAPIClient, error)

	sheetsLimiter *ratelimit.Limiter
	dynamoLimiter *ratelimit.Limiter

	sheetsOnce sync.Once
	sheetsSvc  *sheetsapi.Service
	sheetsErr  error
}

// NewFactory creates a Factory for settings.
func NewFactory(settings domain.Settings, opts ...Option) *Factory {
	f := &Factory{settings: settings}
	f.newSheets = f.sheetsFromCredentials
	f.newDynamo = func(ctx context.Context, cfg dynamo.Config) (dynamodb.ScanAPIClient, error) {
		return dynamo.NewClient(ctx, cfg)
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.sheetsLimiter == nil {
		f.sheetsLimiter = ratelimit.New(ratelimit.ServiceSheets)
	}
	if f.dynamoLimiter == nil {
		f.dynamoLimiter = ratelimit.New(ratelimit.ServiceDynamoDB)
	}
	return f
}

// Build creates all three sources. It never fails; construction errors
// surface when the affected source is read.
func (f *Factory) Build(ctx context.Context) Sources {
	return Sources{
		Missing:   f.MissingMerchants(ctx),
		Mapping:   f.PortalMapping(ctx),
		Directory: f.CompanyDirectory(ctx),
	}
}

// MissingMerchants creates the candidate source for the configured kind.
func (f *Factory) MissingMerchants(ctx context.Context) driven.MissingMerchantSource {
	cfg := f.settings.Missing
	logger.Debug("connectors: missing merchants from %s source", cfg.Kind)

	switch cfg.Kind {
	case domain.SourceKindJSON:
		return filesystem.NewMissingMerchants(cfg.Path)
	case domain.SourceKindXLSX:
		return workbook.NewMissingMerchants(workbook.Config{Path: cfg.Path, Sheet: cfg.Sheet})
	case domain.SourceKindSheets:
		reader, err := f.sheetsReader(ctx, cfg)
		if err != nil {
			return unavailableMissing{err: domain.Unavailable(domain.SourceMissingMerchants, err)}
		}
		return sheets.NewMissingMerchants(reader)
	default:
		return unavailableMissing{err: unsupported(domain.SourceMissingMerchants, cfg.Kind)}
	}
}

// PortalMapping creates the mapping source for the configured kind.
func (f *Factory) PortalMapping(ctx context.Context) driven.PortalMappingSource {
	cfg := f.settings.Mapping
	logger.Debug("connectors: portal mapping from %s source", cfg.Kind)

	switch cfg.Kind {
	case domain.SourceKindSheets:
		reader, err := f.sheetsReader(ctx, cfg)
		if err != nil {
			return unavailableMapping{err: domain.Unavailable(domain.SourcePortalMapping, err)}
		}
		return sheets.NewPortalMapping(reader)
	case domain.SourceKindXLSX:
		return workbook.NewPortalMapping(workbook.Config{Path: cfg.Path, Sheet: cfg.Sheet})
	case domain.SourceKindJSON:
		return filesystem.NewPortalMapping(cfg.Path)
	default:
		return unavailableMapping{err: unsupported(domain.SourcePortalMapping, cfg.Kind)}
	}
}

// CompanyDirectory creates the DynamoDB-backed company directory.
func (f *Factory) CompanyDirectory(ctx context.Context) driven.CompanyDirectory {
	cfg := dynamo.Config{
		Table:     f.settings.Directory.Table,
		Region:    f.settings.Directory.Region,
		Attribute: f.settings.Directory.Attribute,
		Endpoint:  f.settings.Directory.Endpoint,
		PageSize:  clampPageSize(f.settings.Directory.PageSize),
	}
	if cfg.Table == "" {
		return unavailableDirectory{err: domain.Unavailable(domain.SourceCompanyDirectory,
			fmt.Errorf("%w: table name not configured", domain.ErrInvalidInput))}
	}

	client, err := f.newDynamo(ctx, cfg)
	if err != nil {
		return unavailableDirectory{err: domain.Unavailable(domain.SourceCompanyDirectory, err)}
	}
	return dynamo.NewDirectory(client, cfg, f.dynamoLimiter)
}

func (f *Factory) sheetsReader(ctx context.Context, cfg domain.SourceSettings) (*sheets.Reader, error) {
	if cfg.SpreadsheetID == "" {
		return nil, sheets.ErrNoSpreadsheet
	}

	// Both lists may live in Sheets; they share one service.
	f.sheetsOnce.Do(func() {
		f.sheetsSvc, f.sheetsErr = f.newSheets(ctx)
	})
	if f.sheetsErr != nil {
		return nil, f.sheetsErr
	}

	return sheets.NewReader(f.sheetsSvc, sheets.Config{
		SpreadsheetID: cfg.SpreadsheetID,
		Range:         cfg.Range,
	}, f.sheetsLimiter), nil
}

func (f *Factory) sheetsFromCredentials(ctx context.Context) (*sheetsapi.Service, error) {
	ts, err := google.NewTokenSource(ctx, f.settings.Google.CredentialsFile, google.SheetsReadonlyScope)
	if err != nil {
		return nil, err
	}
	return google.NewSheetsService(ctx, ts)
}

func unsupported(source string, kind domain.SourceKind) error {
	return domain.Unavailable(source, fmt.Errorf("%w: source kind %q", domain.ErrUnsupportedType, kind))
}

func clampPageSize(n int) int32 {
	switch {
	case n <= 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(n)
	}
}

// unavailableMissing is returned when the candidate source could not be built.
type unavailableMissing struct{ err error }

func (u unavailableMissing) ReadAll(context.Context) ([]string, error) { return nil, u.err }

type unavailableMapping struct{ err error }

func (u unavailableMapping) ReadAll(context.Context) ([]domain.PortalPair, error) { return nil, u.err }

type unavailableDirectory struct{ err error }

func (u unavailableDirectory) ListNames(context.Context) ([]string, error) { return nil, u.err }
