package store

type implStore struct {
	path string
}

// New creates a Store backed by the JSON file at path
func New(path string) Store {
	return &implStore{path: path}
}

func (s *implStore) Path() string {
	return s.path
}
