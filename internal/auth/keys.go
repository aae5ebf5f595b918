package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// rsaKeyBits is the key size for generated ephemeral key pairs.
const rsaKeyBits = 2048

// KeyPair holds the process-wide RSA key pair used for token signing and
// verification. It is read-only after startup and safe for concurrent use.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// LoadKeyPair reads an RSA key pair from PEM files.
//
// The private key may be PKCS#1 ("RSA PRIVATE KEY") or PKCS#8 ("PRIVATE KEY");
// the public key may be PKIX ("PUBLIC KEY") or PKCS#1 ("RSA PUBLIC KEY").
// Any read or parse failure is returned to the caller, where it is fatal —
// a service that cannot sign tokens has no reason to start.
func LoadKeyPair(privateKeyFile, publicKeyFile string) (*KeyPair, error) {
	priv, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading private key: %w", err)
	}

	pub, err := loadPublicKey(publicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading public key: %w", err)
	}

	return &KeyPair{Private: priv, Public: pub}, nil
}

// GenerateKeyPair creates an ephemeral RSA key pair.
//
// Used when no key files are configured. Tokens signed with an ephemeral
// key cannot be verified after a restart, which is acceptable for the
// development and coursework deployments this path exists for.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generating RSA key pair: %w", err)
	}
	return &KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", path)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing PKCS#1 private key: %w", err)
		}
		return key, nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing PKCS#8 private key: %w", err)
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%s: private key is not RSA", path)
		}
		return rsaKey, nil
	default:
		return nil, fmt.Errorf("%s: unsupported PEM block type %q", path, block.Type)
	}
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", path)
	}

	switch block.Type {
	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing PKIX public key: %w", err)
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%s: public key is not RSA", path)
		}
		return rsaKey, nil
	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing PKCS#1 public key: %w", err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%s: unsupported PEM block type %q", path, block.Type)
	}
}
