package domain

import "errors"

// ErrAlreadyExists indica que a chave única do registro já existe no banco.
// Quem chama deve tratar como "já existe, releia" e não como falha.
var ErrAlreadyExists = errors.New("registro já existe")
