package exifwalk

// MetadataStore is the collaborator interface the core consumes to record
// decoded directories. Store below is the concrete,
// self-contained implementation used when a caller doesn't supply their
// own backing.
type MetadataStore interface {
	// GetOrCreateDirectory returns the directory of the given kind,
	// creating and registering it if this is the first request for that
	// kind. Idempotent: a given kind has at most one Directory per store.
	GetOrCreateDirectory(kind DirectoryKind) *Directory

	// GetDirectory returns the directory of the given kind, or nil if one
	// has never been requested via GetOrCreateDirectory.
	GetDirectory(kind DirectoryKind) *Directory
}

// Store is the default, in-memory MetadataStore: a name-keyed collection of
// directories, at most one instance per kind.
type Store struct {
	dirs map[DirectoryKind]*Directory
}

// NewStore returns an empty metadata store.
func NewStore() *Store {
	return &Store{dirs: make(map[DirectoryKind]*Directory)}
}

func (s *Store) GetOrCreateDirectory(kind DirectoryKind) *Directory {
	if d, ok := s.dirs[kind]; ok {
		return d
	}
	d := newDirectory(kind)
	s.dirs[kind] = d
	return d
}

func (s *Store) GetDirectory(kind DirectoryKind) *Directory {
	return s.dirs[kind]
}

// Directories returns every directory kind populated in the store so far,
// in no particular order.
func (s *Store) Directories() []*Directory {
	out := make([]*Directory, 0, len(s.dirs))
	for _, d := range s.dirs {
		out = append(out, d)
	}
	return out
}
