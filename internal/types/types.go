// Package types holds the vocabulary shared by the archive, dictionary and
// span layers: entry keys, hash dictionaries, compression tags and file type
// classifications.
package types

// Hash is a 64-bit path hash as stored in hashed archives.
type Hash uint64

// Salt perturbs path hashing for a given archive.
type Salt uint16

// CRC32 and Adler32 are the checksums carried by container entries.
type (
	CRC32   uint32
	Adler32 uint32
)

// HashAttr pairs a path hash with the salt it was computed under.
type HashAttr struct {
	Hash Hash
	Salt Salt
}

// EntryKey identifies an archive entry by path or by hash. It has exactly two
// implementations, PathKey and HashKey.
type EntryKey interface {
	isEntryKey()
}

// PathKey identifies an entry by its path.
type PathKey string

func (PathKey) isEntryKey() {}

// HashKey identifies an entry whose path is only known by hash.
type HashKey HashAttr

func (HashKey) isEntryKey() {}

// Dictionary maps hashes to the paths they were computed from, for a single
// salt.
type Dictionary struct {
	Salt  Salt
	Paths map[Hash]string
}

// NewDictionary returns an empty dictionary for salt.
func NewDictionary(salt Salt) Dictionary {
	return Dictionary{Salt: salt, Paths: make(map[Hash]string)}
}

// Lookup returns the path recorded for h.
func (d Dictionary) Lookup(h Hash) (string, bool) {
	path, ok := d.Paths[h]
	return path, ok
}

// Resolve turns key into a path when possible. Path keys resolve to
// themselves; hash keys resolve only when the salt matches and the hash is
// known.
func (d Dictionary) Resolve(key EntryKey) (string, bool) {
	switch k := key.(type) {
	case PathKey:
		return string(k), true
	case HashKey:
		if k.Salt != d.Salt {
			return "", false
		}
		return d.Lookup(k.Hash)
	default:
		return "", false
	}
}

// PathKind tells whether a parsed path is relative or absolute.
type PathKind int

const (
	Relative PathKind = iota
	Absolute
)

// EntryKind tells whether an entry is a file or a directory.
type EntryKind int

const (
	RegularFile EntryKind = iota
	DirectoryEntry
)

// Encryption tells whether an entry's bytes are encrypted.
type Encryption int

const (
	Encrypted Encryption = iota
	Decrypted
)

// ParsedPath is a path discovered while walking an archive, with its hash when
// the archive provided one.
type ParsedPath struct {
	Path  string
	Kind  PathKind
	Entry EntryKind
	Hash  *HashAttr
}

// CompressAttr records how an entry's materialized bytes are encoded.
type CompressAttr struct {
	Type             CompressType
	UncompressedSize uint64
}
