// Package dynamo lists onboarded companies from a DynamoDB table.
//
// The table is scanned with a projection of the single name attribute.
// The attribute name is passed through an expression placeholder because
// "name" is a DynamoDB reserved word. Every page is read; items without a
// string name are skipped.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/custodia-labs/portalcheck/internal/connectors/ratelimit"
	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// Ensure Directory implements the interface.
var _ driven.CompanyDirectory = (*Directory)(nil)

const namePlaceholder = "#n"

// Config locates the company table.
type Config struct {
	// Table is the table name.
	Table string
	// Region is the AWS region.
	Region string
	// Attribute holds the company name. Defaults to "name".
	Attribute string
	// Endpoint overrides the service endpoint (DynamoDB Local).
	Endpoint string
	// PageSize limits items per page. Zero leaves it to the service.
	PageSize int32
}

// NewClient creates a DynamoDB client from the default AWS credential chain
// (environment, shared config, instance role) for the configured region.
func NewClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Directory scans the company table for names.
type Directory struct {
	client  dynamodb.ScanAPIClient
	cfg     Config
	limiter *ratelimit.Limiter
}

// NewDirectory creates a Directory. A nil limiter uses the DynamoDB defaults.
func NewDirectory(client dynamodb.ScanAPIClient, cfg Config, limiter *ratelimit.Limiter) *Directory {
	if cfg.Attribute == "" {
		cfg.Attribute = "name"
	}
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.ServiceDynamoDB)
	}
	return &Directory{client: client, cfg: cfg, limiter: limiter}
}

// ListNames scans every page of the table and returns the company names.
func (d *Directory) ListNames(ctx context.Context) ([]string, error) {
	if d.cfg.Table == "" {
		return nil, domain.Unavailable(domain.SourceCompanyDirectory, fmt.Errorf("table not configured"))
	}

	input := &dynamodb.ScanInput{
		TableName:                aws.String(d.cfg.Table),
		ProjectionExpression:     aws.String(namePlaceholder),
		ExpressionAttributeNames: map[string]string{namePlaceholder: d.cfg.Attribute},
	}
	if d.cfg.PageSize > 0 {
		input.Limit = aws.Int32(d.cfg.PageSize)
	}

	names := make([]string, 0)
	pages := 0
	paginator := dynamodb.NewScanPaginator(d.client, input)
	for paginator.HasMorePages() {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, domain.Unavailable(domain.SourceCompanyDirectory, err)
		}

		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.Unavailable(domain.SourceCompanyDirectory,
				fmt.Errorf("scan %s: %w", d.cfg.Table, err))
		}
		pages++

		for _, item := range page.Items {
			if name, ok := stringAttr(item, d.cfg.Attribute); ok {
				names = append(names, name)
			}
		}
	}

	logger.Debug("dynamo: %d names from %s in %d pages", len(names), d.cfg.Table, pages)
	return names, nil
}

func stringAttr(item map[string]types.AttributeValue, attr string) (string, bool) {
	v, ok := item[attr].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return v.Value, true
}
