package storage

import "errors"

// ErrNotFound lo devuelven todos los adapters de storage (memory, sqlite, postgres)
// cuando la fila no existe. Los servicios lo traducen a su propio ErrNotFound.
var ErrNotFound = errors.New("not found")
