package types

import (
	"fmt"
	"strings"
)

// CompressType tags how materialized bytes must be decoded. The numeric
// values match the on-disk encoding.
type CompressType uint8

const (
	CompressNone CompressType = 0
	CompressZlib CompressType = 1
	CompressRaw  CompressType = 2
	CompressGzip CompressType = 3
	CompressZstd CompressType = 4
)

var compressNames = [...]string{
	CompressNone: "none",
	CompressZlib: "zlib",
	CompressRaw:  "raw",
	CompressGzip: "gzip",
	CompressZstd: "zstd",
}

// Valid reports whether c is a known compression type.
func (c CompressType) Valid() bool {
	return int(c) < len(compressNames)
}

func (c CompressType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("compress(%d)", uint8(c))
	}
	return compressNames[c]
}

// ParseCompressType parses the name produced by CompressType.String.
func ParseCompressType(s string) (CompressType, error) {
	for i, name := range compressNames {
		if strings.EqualFold(s, name) {
			return CompressType(i), nil
		}
	}
	return 0, fmt.Errorf("types: unknown compress type %q", s)
}

// FileType classifies an entry by content.
type FileType uint8

const (
	FileGeneric FileType = iota
	FileSII
	FileDirectory
	FileMat
	FilePMD
	FileTObj
	FileSoundRef
)

var fileTypeNames = [...]string{
	FileGeneric:   "generic",
	FileSII:       "sii",
	FileDirectory: "directory",
	FileMat:       "mat",
	FilePMD:       "pmd",
	FileTObj:      "tobj",
	FileSoundRef:  "soundref",
}

func (f FileType) String() string {
	if int(f) >= len(fileTypeNames) {
		return fmt.Sprintf("filetype(%d)", uint8(f))
	}
	return fileTypeNames[f]
}

// SIIStatus describes the encoding of an SII unit file.
type SIIStatus uint8

const (
	SIIText SIIStatus = iota
	SIIBinary
	SIIEncrypted
	SII3nK
)

var siiNames = [...]string{
	SIIText:      "text",
	SIIBinary:    "binary",
	SIIEncrypted: "encrypted",
	SII3nK:       "3nk",
}

func (s SIIStatus) String() string {
	if int(s) >= len(siiNames) {
		return fmt.Sprintf("sii(%d)", uint8(s))
	}
	return siiNames[s]
}
