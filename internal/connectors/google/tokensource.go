package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	gauth "golang.org/x/oauth2/google"
)

// NewTokenSource creates an oauth2.TokenSource from a service account key file.
// The returned TokenSource can be passed to NewSheetsService.
func NewTokenSource(ctx context.Context, credentialsFile string, scopes ...string) (oauth2.TokenSource, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("google: credentials file not configured")
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	creds, err := gauth.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	return creds.TokenSource, nil
}
