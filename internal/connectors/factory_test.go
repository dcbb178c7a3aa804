package connectors

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/portalcheck/internal/connectors/dynamo"
	"github.com/custodia-labs/portalcheck/internal/connectors/google/sheets"
	"github.com/custodia-labs/portalcheck/internal/connectors/ratelimit"
	"github.com/custodia-labs/portalcheck/internal/core/domain"
)

type stubScanClient struct {
	names []string
	calls int
}

func (s *stubScanClient) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	s.calls++
	items := make([]map[string]types.AttributeValue, 0, len(s.names))
	for _, n := range s.names {
		items = append(items, map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: n}})
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func newSheetsService(t *testing.T, body string) *sheetsapi.Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	svc, err := sheetsapi.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc
}

func testLimiters() Option {
	return WithLimiters(ratelimit.Unlimited(), ratelimit.Unlimited())
}

func TestFactory_Build_DefaultKinds(t *testing.T) {
	dir := t.TempDir()
	missingPath := filepath.Join(dir, "missing.json")
	require.NoError(t, os.WriteFile(missingPath, []byte(`["Aldo", "Nike Card Linked"]`), 0600))

	settings := domain.DefaultSettings()
	settings.Missing.Path = missingPath
	settings.Mapping.SpreadsheetID = "sheet-123"

	svc := newSheetsService(t, `{"range": "Sheet1", "values": [["Aldo Shoes", "http://portal/aldo"]]}`)
	client := &stubScanClient{names: []string{"Aldo Shoes"}}
	factory := NewFactory(settings, WithSheetsService(svc), WithDynamoClient(client), testLimiters())

	sources := factory.Build(context.Background())
	ctx := context.Background()

	candidates, err := sources.Missing.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aldo", "Nike Card Linked"}, candidates)

	pairs, err := sources.Mapping.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.PortalPair{{Name: "Aldo Shoes", URL: "http://portal/aldo"}}, pairs)

	names, err := sources.Directory.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aldo Shoes"}, names)
	assert.Equal(t, 1, client.calls)
}

func TestFactory_MissingMerchants_Sheets(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Missing.Kind = domain.SourceKindSheets
	settings.Missing.SpreadsheetID = "missing-sheet"

	svc := newSheetsService(t, `{"range": "A1:A", "values": [["Aldo"], [""], ["Nike"]]}`)
	factory := NewFactory(settings, WithSheetsService(svc), testLimiters())

	candidates, err := factory.MissingMerchants(context.Background()).ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Aldo", "Nike"}, candidates)
}

func TestFactory_PortalMapping_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portals.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["Nike", "http://portal/nike"]]`), 0600))

	settings := domain.DefaultSettings()
	settings.Mapping.Kind = domain.SourceKindJSON
	settings.Mapping.Path = path

	pairs, err := NewFactory(settings).PortalMapping(context.Background()).ReadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.PortalPair{{Name: "Nike", URL: "http://portal/nike"}}, pairs)
}

func TestFactory_PortalMapping_NoSpreadsheetID(t *testing.T) {
	settings := domain.DefaultSettings()
	built := false
	factory := NewFactory(settings, testLimiters())
	factory.newSheets = func(context.Context) (*sheetsapi.Service, error) {
		built = true
		return nil, errors.New("unexpected")
	}

	_, err := factory.PortalMapping(context.Background()).ReadAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, sheets.ErrNoSpreadsheet)
	assert.False(t, built)
}

func TestFactory_PortalMapping_MissingCredentials(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Mapping.SpreadsheetID = "sheet-123"
	settings.Google.CredentialsFile = filepath.Join(t.TempDir(), "absent.json")

	_, err := NewFactory(settings).PortalMapping(context.Background()).ReadAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	var srcErr *domain.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, domain.SourcePortalMapping, srcErr.Source)
}

func TestFactory_SheetsServiceBuiltOnce(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Missing.Kind = domain.SourceKindSheets
	settings.Missing.SpreadsheetID = "missing-sheet"
	settings.Mapping.SpreadsheetID = "mapping-sheet"

	calls := 0
	factory := NewFactory(settings, testLimiters())
	factory.newSheets = func(context.Context) (*sheetsapi.Service, error) {
		calls++
		return nil, errors.New("no credentials")
	}

	sources := factory.Build(context.Background())
	_, missingErr := sources.Missing.ReadAll(context.Background())
	_, mappingErr := sources.Mapping.ReadAll(context.Background())

	assert.Equal(t, 1, calls)
	assert.ErrorContains(t, missingErr, "no credentials")
	assert.ErrorContains(t, mappingErr, "no credentials")
}

func TestFactory_UnsupportedKind(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Missing.Kind = "csv"
	settings.Mapping.Kind = "csv"
	factory := NewFactory(settings, WithDynamoClient(&stubScanClient{}), testLimiters())

	_, missingErr := factory.MissingMerchants(context.Background()).ReadAll(context.Background())
	_, mappingErr := factory.PortalMapping(context.Background()).ReadAll(context.Background())

	assert.ErrorIs(t, missingErr, domain.ErrUnsupportedType)
	assert.ErrorIs(t, mappingErr, domain.ErrUnsupportedType)
	assert.ErrorIs(t, missingErr, domain.ErrSourceUnavailable)
}

func TestFactory_CompanyDirectory_NoTable(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Directory.Table = ""
	client := &stubScanClient{}

	_, err := NewFactory(settings, WithDynamoClient(client)).CompanyDirectory(context.Background()).
		ListNames(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, client.calls)
}

func TestFactory_CompanyDirectory_ClientError(t *testing.T) {
	factory := NewFactory(domain.DefaultSettings(), testLimiters())
	factory.newDynamo = func(context.Context, dynamo.Config) (dynamodb.ScanAPIClient, error) {
		return nil, errors.New("no region")
	}

	_, err := factory.CompanyDirectory(context.Background()).ListNames(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorContains(t, err, "no region")
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, int32(0), clampPageSize(-1))
	assert.Equal(t, int32(0), clampPageSize(0))
	assert.Equal(t, int32(25), clampPageSize(25))
	assert.Equal(t, int32(math.MaxInt32), clampPageSize(math.MaxInt32))
}
