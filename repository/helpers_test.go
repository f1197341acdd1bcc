package repository

import (
	"context"
	"testing"

	"github.com/ikornaselur/similarium/models"
	"github.com/ikornaselur/similarium/repository/testutil"

	"github.com/stretchr/testify/require"
)

// seedChannel inserts a subscribed channel so games can reference it
func seedChannel(t *testing.T, testDB *testutil.TestDatabase, id string) *models.Channel {
	t.Helper()
	channel := testutil.CreateTestChannel(id, 9)
	require.NoError(t, NewChannelRepository(testDB.DB).Upsert(context.Background(), channel))
	return channel
}

// seedUser inserts a user so guesses and winners can reference it
func seedUser(t *testing.T, testDB *testutil.TestDatabase, id string) *models.User {
	t.Helper()
	user := testutil.CreateTestUser(id, "user-"+id)
	require.NoError(t, NewUserRepository(testDB.DB).Upsert(context.Background(), user))
	return user
}

// seedGame inserts a channel and an active game in it
func seedGame(t *testing.T, testDB *testutil.TestDatabase, channelID, secret string) *models.Game {
	t.Helper()
	seedChannel(t, testDB, channelID)
	game := testutil.CreateTestGame(channelID, secret)
	require.NoError(t, NewGameRepository(testDB.DB).Create(context.Background(), game))
	return game
}

// seedWord2Vec inserts a stored vector so nearby rows can reference it
func seedWord2Vec(t *testing.T, testDB *testutil.TestDatabase, word string, seed float64) {
	t.Helper()
	w2v := testutil.CreateTestWord2Vec(word, seed)
	require.NoError(t, NewWord2VecRepository(testDB.DB).Insert(context.Background(), w2v))
}
