package fs

import (
	"fmt"
	"io"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/devflow/internal/core/domain"
	"go.trai.ch/devflow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// missingMarker is mixed in for absent inputs so that an absent file and an
// empty file hash differently.
var missingMarker = []byte("missing\x00")

// Fingerprinter hashes fingerprint inputs with xxhash.
type Fingerprinter struct {
	fs afero.Fs
}

// NewFingerprinter creates a Fingerprinter over fs.
func NewFingerprinter(fs afero.Fs) *Fingerprinter {
	return &Fingerprinter{fs: fs}
}

// Fingerprint returns a deterministic 16 hex digit digest of the inputs under dir.
// Inputs are sorted and deduplicated after glob expansion, so the result does
// not depend on the order extensions declared them in.
func (f *Fingerprinter) Fingerprint(dir string, inputs []string) (string, error) {
	root := afero.NewBasePathFs(f.fs, dir)

	files, err := expandInputs(root, inputs)
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for _, name := range files {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})

		if err := hashFile(root, name, hasher); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "input", name)
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// expandInputs resolves glob patterns and returns the sorted, deduplicated input list.
// A pattern without matches is kept verbatim and hashes as missing.
func expandInputs(root afero.Fs, inputs []string) ([]string, error) {
	iofs := afero.NewIOFS(root)

	files := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if !hasMeta(input) {
			files = append(files, input)
			continue
		}

		matches, err := doublestar.Glob(iofs, input, doublestar.WithFilesOnly())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "pattern", input)
		}
		if len(matches) == 0 {
			files = append(files, input)
			continue
		}
		files = append(files, matches...)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func hashFile(root afero.Fs, name string, w io.Writer) error {
	info, err := root.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		_, _ = w.Write(missingMarker)
		return nil //nolint:nilerr // absent inputs are part of the fingerprint
	}

	file, err := root.Open(name)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	_, err = io.Copy(w, file)
	return err
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
