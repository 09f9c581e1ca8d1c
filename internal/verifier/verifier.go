// Package verifier tests candidate passwords against an encrypted ZIP archive.
package verifier

import (
	"bytes"
	"errors"
	"io"

	yzip "github.com/yeka/zip"
)

var (
	// ErrEmptyArchive is returned for zero-length input or an archive without entries.
	ErrEmptyArchive = errors.New("zip has no entries")
	// ErrNotEncrypted is returned when no regular file in the archive is encrypted.
	ErrNotEncrypted = errors.New("zip has no encrypted files")
)

// Worker checks batches of candidates against one archive. It is used by a
// single goroutine.
type Worker interface {
	// BatchVerify returns the index of the first matching candidate, or -1,
	// and how many candidates were tried.
	BatchVerify(batch []string) (matchIdx int, attempts int)
	Close()
}

// Verifier creates Workers bound to the bytes of one archive.
type Verifier interface {
	NewWorker(zipBytes []byte) (Worker, error)
}

// NewCPU returns the yeka/zip based verifier. Traditional ZipCrypto entries
// are prefiltered on their header check byte before a full decryption.
func NewCPU() Verifier {
	return cpuVerifier{}
}

type cpuVerifier struct{}

func (cpuVerifier) NewWorker(zipBytes []byte) (Worker, error) {
	zr, err := openArchive(zipBytes)
	if err != nil {
		return nil, err
	}
	target, err := encryptedTarget(zr)
	if err != nil {
		return nil, err
	}
	w := &cpuWorker{data: zipBytes, target: target}
	if headers, err := parseZipHeaders(zipBytes); err == nil {
		w.prefilter = headers[target]
	}
	return w, nil
}

type cpuWorker struct {
	data      []byte
	target    int
	prefilter *ZipCryptoInfo
}

func (w *cpuWorker) Close() {}

func (w *cpuWorker) BatchVerify(batch []string) (int, int) {
	for i, candidate := range batch {
		if w.matches(candidate) {
			return i, i + 1
		}
	}
	return -1, len(batch)
}

// matches decrypts the target entry to EOF so the CRC or MAC check runs.
// A fresh reader is opened per candidate since yeka/zip keeps the password
// on the shared File.
func (w *cpuWorker) matches(password string) bool {
	if w.prefilter != nil && !w.prefilter.Accepts(password) {
		return false
	}
	zr, err := openArchive(w.data)
	if err != nil || w.target >= len(zr.File) {
		return false
	}
	f := zr.File[w.target]
	f.SetPassword(password)
	rc, err := f.Open()
	if err != nil {
		return false
	}
	_, err = io.Copy(io.Discard, rc)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	return err == nil
}

func openArchive(zipBytes []byte) (*yzip.Reader, error) {
	if len(zipBytes) == 0 {
		return nil, ErrEmptyArchive
	}
	zr, err := yzip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, err
	}
	if len(zr.File) == 0 {
		return nil, ErrEmptyArchive
	}
	return zr, nil
}

// encryptedTarget picks the smallest encrypted regular file, which is the
// cheapest to decrypt per candidate.
func encryptedTarget(zr *yzip.Reader) (int, error) {
	target := -1
	var size uint64
	for i, f := range zr.File {
		if f.FileInfo().IsDir() || !f.IsEncrypted() {
			continue
		}
		if target == -1 || f.UncompressedSize64 < size {
			target, size = i, f.UncompressedSize64
		}
	}
	if target == -1 {
		return -1, ErrNotEncrypted
	}
	return target, nil
}

// findSmallestEncryptedIndex returns the index of the entry workers verify against.
func findSmallestEncryptedIndex(zipBytes []byte) (int, error) {
	zr, err := openArchive(zipBytes)
	if err != nil {
		return -1, err
	}
	return encryptedTarget(zr)
}
