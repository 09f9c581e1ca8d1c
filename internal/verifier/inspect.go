package verifier

// ArchiveInfo summarises the entries of a ZIP archive.
type ArchiveInfo struct {
	Entries   int
	Encrypted int
	// Target is the entry candidates are verified against.
	Target string
	// Prefiltered is true when Target carries a ZipCrypto header usable for fast rejection.
	Prefiltered bool
}

// Inspect parses in-memory ZIP bytes and reports the entry a worker would
// target. It fails with ErrNotEncrypted when no regular file is encrypted.
func Inspect(zipBytes []byte) (ArchiveInfo, error) {
	zr, err := openArchive(zipBytes)
	if err != nil {
		return ArchiveInfo{}, err
	}
	info := ArchiveInfo{Entries: len(zr.File)}
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() && f.IsEncrypted() {
			info.Encrypted++
		}
	}
	target, err := encryptedTarget(zr)
	if err != nil {
		return info, err
	}
	info.Target = zr.File[target].Name
	if headers, err := parseZipHeaders(zipBytes); err == nil {
		info.Prefiltered = headers[target] != nil
	}
	return info, nil
}
