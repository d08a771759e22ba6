package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"

	"github.com/spf13/afero"
)

const hostKeyBits = 2048

// Initialize writes the default configuration into dir, skipping any file
// that already exists so re-running is safe.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return err
	}
	configFs := afero.NewBasePathFs(fsys, dir)

	if err := writeIfMissing(configFs, ConfigurationName, logger, func() ([]byte, error) {
		return defaultConfigData, nil
	}); err != nil {
		return err
	}

	return writeIfMissing(configFs, HostKeyName, logger, generateHostKey)
}

func writeIfMissing(fsys afero.Fs, name string, logger *log.Logger, contents func() ([]byte, error)) error {
	if _, err := fsys.Stat(name); err == nil {
		logger.Printf("%s already exists, skipping", name)
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := contents()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, name, data, 0600); err != nil {
		return err
	}
	logger.Printf("created %s", name)
	return nil
}

func generateHostKey() ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, hostKeyBits)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}), nil
}
