package codegen

import (
	"github.com/roach88/bairiak/internal/ir"
)

// MarshalManifest describes the bit layouts of a in canonical JSON.
// Storing the manifest next to persisted raw values records which bit means
// which flag, independent of the Go code.
func MarshalManifest(a *Artifact) ([]byte, error) {
	enums := make(ir.IRArray, len(a.Enums))
	for i, l := range a.Enums {
		bits := make(ir.IRArray, len(l.Variants))
		for j, v := range l.Variants {
			bits[j] = ir.IRObject{
				"bit":  ir.IRInt(v.Bit),
				"name": ir.IRString(v.Name),
			}
		}
		enums[i] = ir.IRObject{
			"name":      ir.IRString(l.Name),
			"width":     ir.IRInt(l.Width.Bits()),
			"layout_id": ir.IRString(l.LayoutID),
			"variants":  bits,
		}
	}

	manifest := ir.IRObject{
		"manifest_version":  ir.IRString(ir.ManifestVersion),
		"generator_version": ir.IRString(ir.GeneratorVersion),
		"fingerprint":       ir.IRString(a.Fingerprint),
		"enums":             enums,
	}
	if a.Source != "" {
		manifest["source"] = ir.IRString(a.Source)
	}
	return ir.MarshalCanonical(manifest)
}
