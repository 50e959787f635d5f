// Package keys inspects OpenPGP key material with go-crypto.
package keys

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

const armorHeader = "-----BEGIN PGP"

var _ ports.KeyInspector = (*Inspector)(nil)

// Inspector implements ports.KeyInspector.
type Inspector struct{}

// NewInspector creates an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Fingerprints returns the fingerprints of every primary key and subkey in
// content, which may be armored or binary.
func (i *Inspector) Fingerprints(content string) ([]string, error) {
	var (
		entities openpgp.EntityList
		err      error
	)
	if strings.Contains(content, armorHeader) {
		entities, err = openpgp.ReadArmoredKeyRing(strings.NewReader(content))
	} else {
		entities, err = openpgp.ReadKeyRing(bytes.NewReader([]byte(content)))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrKeyParseFailed, err)
	}
	if len(entities) == 0 {
		return nil, zerr.Wrap(domain.ErrKeyParseFailed, "no keys found")
	}

	var fps []string
	for _, e := range entities {
		fps = append(fps, strings.ToUpper(hex.EncodeToString(e.PrimaryKey.Fingerprint)))
		for _, sub := range e.Subkeys {
			fps = append(fps, strings.ToUpper(hex.EncodeToString(sub.PublicKey.Fingerprint)))
		}
	}
	return fps, nil
}
