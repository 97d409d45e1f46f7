package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrSaleNotFound  = errors.New("registro de venda não encontrado")
	ErrStoreFailure  = errors.New("falha ao consultar o record store")
	ErrInvalidPaging = errors.New("paginação inválida")
)

// StoreError indica qual leitura do record store falhou
type StoreError struct {
	Op  string // "sales" ou "platforms"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrStoreFailure.Error(), e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStoreFailure, e.Err}
}

// IsStoreError verifica se o erro veio do record store
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreFailure)
}
