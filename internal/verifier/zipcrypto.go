package verifier

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// methodAES marks WinZip AES entries, which carry no ZipCrypto header.
const methodAES = 99

// ZipCryptoInfo holds what is needed to reject a password from the
// 12-byte traditional encryption header alone.
type ZipCryptoInfo struct {
	EncryptedHeader [12]byte
	CRC32           uint32
	ModTime         uint16
	Flag            uint16
	// CheckByte is the expected last byte of the decrypted header.
	CheckByte byte
}

// Accepts reports whether password decrypts the header to the expected
// check byte. A false result is definitive; a true result still needs a
// full decryption since roughly one wrong password in 256 passes.
func (z *ZipCryptoInfo) Accepts(password string) bool {
	k := newZipCryptoKeys(password)
	var last byte
	for _, c := range z.EncryptedHeader {
		last = k.decrypt(c)
	}
	return last == z.CheckByte
}

type zipCryptoKeys [3]uint32

func newZipCryptoKeys(password string) *zipCryptoKeys {
	k := &zipCryptoKeys{0x12345678, 0x23456789, 0x34567890}
	for i := 0; i < len(password); i++ {
		k.update(password[i])
	}
	return k
}

func crcUpdate(crc uint32, b byte) uint32 {
	return crc32.IEEETable[byte(crc)^b] ^ (crc >> 8)
}

func (k *zipCryptoKeys) update(b byte) {
	k[0] = crcUpdate(k[0], b)
	k[1] = (k[1]+(k[0]&0xff))*134775813 + 1
	k[2] = crcUpdate(k[2], byte(k[1]>>24))
}

func (k *zipCryptoKeys) stream() byte {
	t := (k[2] | 2) & 0xffff
	return byte((t * (t ^ 1)) >> 8)
}

func (k *zipCryptoKeys) decrypt(c byte) byte {
	p := c ^ k.stream()
	k.update(p)
	return p
}

// parseZipHeaders returns the ZipCrypto header of every traditionally
// encrypted entry, keyed by central directory index.
func parseZipHeaders(zipBytes []byte) (map[int]*ZipCryptoInfo, error) {
	if len(zipBytes) < 22 {
		return nil, errors.New("zip file too small")
	}

	eocdOffset := findEOCD(zipBytes)
	if eocdOffset == -1 {
		return nil, errors.New("end of central directory not found")
	}

	cdOffset := binary.LittleEndian.Uint32(zipBytes[eocdOffset+16:])
	numEntries := binary.LittleEndian.Uint16(zipBytes[eocdOffset+10:])
	if cdOffset >= uint32(len(zipBytes)) {
		return nil, errors.New("invalid central directory offset")
	}

	infos := make(map[int]*ZipCryptoInfo)
	offset := cdOffset
	for i := uint16(0); i < numEntries && int(offset)+46 <= len(zipBytes); i++ {
		if binary.LittleEndian.Uint32(zipBytes[offset:]) != 0x02014b50 {
			return nil, errors.New("invalid central directory entry")
		}

		flag := binary.LittleEndian.Uint16(zipBytes[offset+8:])
		method := binary.LittleEndian.Uint16(zipBytes[offset+10:])
		modTime := binary.LittleEndian.Uint16(zipBytes[offset+12:])
		crc := binary.LittleEndian.Uint32(zipBytes[offset+16:])
		fileNameLen := binary.LittleEndian.Uint16(zipBytes[offset+28:])
		extraLen := binary.LittleEndian.Uint16(zipBytes[offset+30:])
		commentLen := binary.LittleEndian.Uint16(zipBytes[offset+32:])
		localHeaderOffset := binary.LittleEndian.Uint32(zipBytes[offset+42:])

		if flag&0x01 != 0 && method != methodAES {
			if info, err := extractZipCryptoInfo(zipBytes, localHeaderOffset, flag, crc, modTime); err == nil {
				infos[int(i)] = info
			}
		}

		offset += 46 + uint32(fileNameLen) + uint32(extraLen) + uint32(commentLen)
	}
	return infos, nil
}

// findEOCD searches backwards for the end of central directory signature.
func findEOCD(zipBytes []byte) int {
	for i := len(zipBytes) - 22; i >= 0; i-- {
		if binary.LittleEndian.Uint32(zipBytes[i:]) == 0x06054b50 {
			return i
		}
	}
	return -1
}

// extractZipCryptoInfo reads the encryption header that follows a local file header.
func extractZipCryptoInfo(zipBytes []byte, localHeaderOffset uint32, flag uint16, crc uint32, modTime uint16) (*ZipCryptoInfo, error) {
	if int(localHeaderOffset)+30 > len(zipBytes) {
		return nil, errors.New("invalid local header offset")
	}
	if binary.LittleEndian.Uint32(zipBytes[localHeaderOffset:]) != 0x04034b50 {
		return nil, errors.New("invalid local file header")
	}

	fileNameLen := binary.LittleEndian.Uint16(zipBytes[localHeaderOffset+26:])
	extraLen := binary.LittleEndian.Uint16(zipBytes[localHeaderOffset+28:])
	dataOffset := int(localHeaderOffset) + 30 + int(fileNameLen) + int(extraLen)
	if dataOffset+12 > len(zipBytes) {
		return nil, errors.New("insufficient data for encryption header")
	}

	info := &ZipCryptoInfo{CRC32: crc, ModTime: modTime, Flag: flag}
	copy(info.EncryptedHeader[:], zipBytes[dataOffset:dataOffset+12])

	// Bit 3 means the CRC is in a trailing data descriptor; the check byte
	// then comes from the modification time.
	if flag&0x08 != 0 {
		info.CheckByte = byte(modTime >> 8)
	} else {
		info.CheckByte = byte(crc >> 24)
	}
	return info, nil
}
