package verifier

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yzip "github.com/yeka/zip"
)

func (k *zipCryptoKeys) encrypt(p byte) byte {
	c := p ^ k.stream()
	k.update(p)
	return c
}

func encryptedZip(t *testing.T, password string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := yzip.NewWriter(buf)

	w, err := zw.Encrypt("large.txt", password, yzip.AES256Encryption)
	require.NoError(t, err)
	_, err = w.Write(bytes.Repeat([]byte("brutedict "), 100))
	require.NoError(t, err)

	w, err = zw.Encrypt("small.txt", password, yzip.AES256Encryption)
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestCPUWorkerFindsPassword(t *testing.T) {
	zipBytes := encryptedZip(t, "Ana_lima7")

	w, err := NewCPU().NewWorker(zipBytes)
	require.NoError(t, err)
	defer w.Close()

	idx, attempts := w.BatchVerify([]string{"analima", "lima_ana", "Ana_lima7", "never"})
	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, attempts)

	idx, attempts = w.BatchVerify([]string{"analima", "lima_ana"})
	assert.Equal(t, -1, idx)
	assert.Equal(t, 2, attempts)
}

func TestCPUWorkerTargetsSmallestEntry(t *testing.T) {
	target, err := findSmallestEncryptedIndex(encryptedZip(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, 1, target)
}

func TestCPUWorkerRejectsPlainArchives(t *testing.T) {
	buf := new(bytes.Buffer)
	zw := yzip.NewWriter(buf)
	w, err := zw.Create("plain.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = NewCPU().NewWorker(buf.Bytes())
	assert.ErrorIs(t, err, ErrNotEncrypted)

	_, err = NewCPU().NewWorker(nil)
	assert.ErrorIs(t, err, ErrEmptyArchive)
}

func TestInspect(t *testing.T) {
	info, err := Inspect(encryptedZip(t, "secret"))
	require.NoError(t, err)
	assert.Equal(t, 2, info.Entries)
	assert.Equal(t, 2, info.Encrypted)
	assert.Equal(t, "small.txt", info.Target)

	_, err = Inspect([]byte("garbage"))
	assert.Error(t, err)
}

func TestZipCryptoInfoAccepts(t *testing.T) {
	const password = "analima1990"
	plain := [12]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0xAB}

	info := &ZipCryptoInfo{CheckByte: 0xAB}
	k := newZipCryptoKeys(password)
	for i, p := range plain {
		info.EncryptedHeader[i] = k.encrypt(p)
	}

	assert.True(t, info.Accepts(password))

	rejected := 0
	for _, wrong := range []string{"analima", "limaana1990", "Analima1990", "1990analima", "ana_lima"} {
		if !info.Accepts(wrong) {
			rejected++
		}
	}
	assert.Greater(t, rejected, 0)
}

func TestParseZipHeadersRejectsGarbage(t *testing.T) {
	_, err := parseZipHeaders([]byte("not a zip"))
	assert.Error(t, err)

	_, err = parseZipHeaders(bytes.Repeat([]byte{0}, 64))
	assert.Error(t, err)
}
