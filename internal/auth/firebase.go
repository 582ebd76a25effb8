// Package auth verifies bearer tokens against the Firebase identity provider.
package auth

import (
	"context"
	"encoding/base64"
	"errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier checks an ID token and returns the verified identity's email.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (email string, err error)
}

// FirebaseVerifier verifies tokens with the Firebase Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a verifier from a base64-encoded service account
// credential, the way the deployment environment supplies it.
func NewFirebaseVerifier(ctx context.Context, credentialBase64 string) (*FirebaseVerifier, error) {
	raw, err := base64.StdEncoding.DecodeString(credentialBase64)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(raw))
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &FirebaseVerifier{client: client}, nil
}

// Verify validates the token signature and expiry and extracts the email claim.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	email, ok := token.Claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}
