package access

import "context"

// CatGate autoriza operaciones sobre un gato.
// Se declara aquí para evitar ciclos de imports entre cats y los módulos que cuelgan de él.
type CatGate interface {
	AuthorizeCat(ctx context.Context, catID, userID string) error
}
