package services

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedUpUser(t *testing.T) (*CartService, string) {
	t.Helper()
	auth, users := newTestAuth(t)

	token, err := auth.Signup(context.Background(), "alice", "a@x.com", "pw1")
	require.NoError(t, err)
	id, err := auth.VerifyToken(token)
	require.NoError(t, err)

	return NewCartService(users), id
}

func TestCartAddRemove(t *testing.T) {
	ctx := context.Background()
	cart, userID := signedUpUser(t)

	require.NoError(t, cart.AddItem(ctx, userID, "5"))
	items, err := cart.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, items["5"])

	require.NoError(t, cart.AddItem(ctx, userID, "5"))
	items, err = cart.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, items["5"])

	require.NoError(t, cart.RemoveItem(ctx, userID, "5"))
	items, err = cart.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, items["5"])
}

func TestCartAddInitializesMissingSlot(t *testing.T) {
	ctx := context.Background()
	cart, userID := signedUpUser(t)

	require.NoError(t, cart.AddItem(ctx, userID, "1000"))
	items, err := cart.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, items["1000"])
}

func TestCartRemoveAtZeroIsNoop(t *testing.T) {
	ctx := context.Background()
	cart, userID := signedUpUser(t)

	require.NoError(t, cart.RemoveItem(ctx, userID, "3"))
	require.NoError(t, cart.RemoveItem(ctx, userID, "absent"))

	items, err := cart.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, items["3"])
	_, ok := items["absent"]
	assert.False(t, ok)
}

func TestCartQuantitiesNeverNegative(t *testing.T) {
	ctx := context.Background()
	cart, userID := signedUpUser(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		item := strconv.Itoa(rng.Intn(5))
		if rng.Intn(2) == 0 {
			require.NoError(t, cart.AddItem(ctx, userID, item))
		} else {
			require.NoError(t, cart.RemoveItem(ctx, userID, item))
		}
	}

	items, err := cart.GetCart(ctx, userID)
	require.NoError(t, err)
	for id, qty := range items {
		assert.GreaterOrEqual(t, qty, 0, "item %s", id)
	}
}

func TestCartUnknownUser(t *testing.T) {
	ctx := context.Background()
	cart, _ := signedUpUser(t)

	assert.ErrorIs(t, cart.AddItem(ctx, "ghost", "1"), ErrUserNotFound)
	assert.ErrorIs(t, cart.RemoveItem(ctx, "ghost", "1"), ErrUserNotFound)
	_, err := cart.GetCart(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
