package nomad

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devantler-tech/jobplan/pkg/io/config"
)

// ErrNoCertificates is returned when a CA file or directory holds no PEM
// certificates.
var ErrNoCertificates = errors.New("no PEM certificates found")

// tlsConfig builds the client TLS settings, or returns nil when cfg asks
// for nothing beyond the system defaults.
func tlsConfig(cfg *config.Config) (*tls.Config, error) {
	if cfg.CACert == "" && cfg.CAPath == "" && cfg.ClientCert == "" && !cfg.TLSSkipVerify {
		return nil, nil //nolint:nilnil // nil means default transport settings
	}

	tlsCfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.TLSSkipVerify, //nolint:gosec // explicitly requested by the user
	}

	if cfg.CACert != "" || cfg.CAPath != "" {
		pool, err := certPool(cfg.CACert, cfg.CAPath)
		if err != nil {
			return nil, err
		}

		tlsCfg.RootCAs = pool
	}

	if cfg.ClientCert != "" && cfg.ClientKey != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCert, cfg.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}

		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	return tlsCfg, nil
}

func certPool(caFile, caDir string) (*x509.CertPool, error) {
	pool := x509.NewCertPool()

	files := []string{}
	if caFile != "" {
		files = append(files, caFile)
	}

	if caDir != "" {
		entries, err := os.ReadDir(caDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA directory: %w", err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				files = append(files, filepath.Join(caDir, entry.Name()))
			}
		}
	}

	added := false

	for _, file := range files {
		pem, err := os.ReadFile(file) //nolint:gosec // path comes from configuration
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}

		if pool.AppendCertsFromPEM(pem) {
			added = true
		}
	}

	if !added {
		return nil, ErrNoCertificates
	}

	return pool, nil
}
