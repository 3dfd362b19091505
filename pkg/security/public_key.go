package security

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

func ParsePublicKey(pkey []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pkey)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, errors.New("no pem block found")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPub, nil
}

// ParsePublicKeyBase64 decodes a base64 wrapped PEM public key as it is passed through the environment.
func ParsePublicKeyBase64(encoded string) (*rsa.PublicKey, error) {
	encoded = strings.TrimSpace(encoded)

	pkey, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		pkey, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
	}

	return ParsePublicKey(pkey)
}
