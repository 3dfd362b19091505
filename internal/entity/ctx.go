package entity

import (
	"context"
	"fmt"
)

type userCtxKey struct{}

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromCtx returns the actor of the request. Requests without one are unauthenticated.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(userCtxKey{}).(User)
	if !ok || user.ID.IsNil() {
		return User{}, fmt.Errorf("%w: no actor in context", ErrUnauthenticated)
	}

	return user, nil
}
