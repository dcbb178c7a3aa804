package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// Ensure the JSON sources implement the interfaces.
var (
	_ driven.MissingMerchantSource = (*MissingMerchants)(nil)
	_ driven.PortalMappingSource   = (*PortalMapping)(nil)
)

// MissingMerchants reads candidate names from a JSON array of strings.
type MissingMerchants struct {
	path string
}

// NewMissingMerchants creates a source reading the file at path.
// The path may be a file:// URI.
func NewMissingMerchants(path string) *MissingMerchants {
	return &MissingMerchants{path: ResolvePath(path)}
}

// ReadAll returns the array elements in file order.
func (s *MissingMerchants) ReadAll(ctx context.Context) ([]string, error) {
	// Pointers tell a null element apart from an empty string.
	var elems []*string
	if err := readJSON(ctx, domain.SourceMissingMerchants, s.path, &elems); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(elems))
	for i, e := range elems {
		if e == nil {
			return nil, domain.Malformed(domain.SourceMissingMerchants,
				fmt.Errorf("decode %s: element %d is null", s.path, i))
		}
		names = append(names, *e)
	}
	logger.Debug("filesystem: %d candidates in %s", len(names), s.path)
	return names, nil
}

// PortalMapping reads name/URL rows from a JSON array of string arrays.
type PortalMapping struct {
	path string
}

// NewPortalMapping creates a source reading the file at path.
func NewPortalMapping(path string) *PortalMapping {
	return &PortalMapping{path: ResolvePath(path)}
}

// ReadAll returns one pair per row that has a name.
func (s *PortalMapping) ReadAll(ctx context.Context) ([]domain.PortalPair, error) {
	var rows [][]string
	if err := readJSON(ctx, domain.SourcePortalMapping, s.path, &rows); err != nil {
		return nil, err
	}
	logger.Debug("filesystem: %d mapping rows in %s", len(rows), s.path)
	return domain.PairsFromRows(rows), nil
}

func readJSON(ctx context.Context, source, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return domain.Unavailable(source, err)
	}
	if path == "" {
		return domain.Unavailable(source, fmt.Errorf("path not configured"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Unavailable(source, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return domain.Malformed(source, fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}
