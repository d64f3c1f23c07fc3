package utils

import (
	"context"
	"fmt"

	"firebase-config/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/api/transport"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// AppConfigFor maps the web config onto the admin SDK's app config. Only the
// project and bucket carry over; the rest are browser-side identifiers.
func AppConfigFor(cfg config.FirebaseConfig) *firebase.Config {
	return &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}
}

// NewFirebaseApp initializes a Firebase App for the project described by cfg.
// The SDK resolves credentials lazily, so a configured service account file is
// loaded here first; a bad path fails at startup instead of on first use.
// Without a path the SDK falls back to application default credentials.
func NewFirebaseApp(ctx context.Context, cfg config.FirebaseConfig, credentialsPath string) (*firebase.App, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		creds, err := transport.Creds(ctx,
			option.WithCredentialsFile(credentialsPath),
			option.WithScopes(cloudPlatformScope),
		)
		if err != nil {
			return nil, fmt.Errorf("firebase: error loading credentials from %s: %w", credentialsPath, err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	app, err := firebase.NewApp(ctx, AppConfigFor(cfg), opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	return app, nil
}
