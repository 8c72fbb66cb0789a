package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Domain prefix for content-addressed artifact identity.
// Version suffix enables future algorithm migration.
const DomainArtifact = "bairiak/artifact/v1"

// LayoutNamespace is the UUID namespace of layout IDs.
var LayoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/bairiak/layout/v1"))

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint identifies generated source. Identical specs always produce
// identical code and therefore identical fingerprints.
func Fingerprint(code []byte) string {
	return hashWithDomain(DomainArtifact, code)
}

// LayoutID returns the name-based (version 5) UUID of an enum's bit layout.
// It is computed over the canonical JSON of {name, variants}, so it changes
// exactly when the enum is renamed or its variants change in name or order.
// A raw integer persisted next to its layout ID can therefore be checked
// against the layout that reads it back.
func LayoutID(e EnumSpec) (string, error) {
	canonical, err := MarshalCanonical(IRObject{
		"name":     IRString(e.Name),
		"variants": Strings(e.Variants),
	})
	if err != nil {
		return "", fmt.Errorf("LayoutID: failed to marshal: %w", err)
	}
	return uuid.NewSHA1(LayoutNamespace, canonical).String(), nil
}

// MustLayoutID is like LayoutID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustLayoutID(e EnumSpec) string {
	id, err := LayoutID(e)
	if err != nil {
		panic(err)
	}
	return id
}
