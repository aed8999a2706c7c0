package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseballplanet/fan-engagement/internal/model"
)

// fixedClock pins the feed timestamps for assertions.
type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

func newTestFeed() *CommunityRepo {
	return NewCommunityRepo(fixedClock{at: time.Date(2025, 7, 18, 21, 5, 0, 0, time.UTC)})
}

func TestFeedSeeds(t *testing.T) {
	feed := newTestFeed()

	posts := feed.Posts("")
	require.Len(t, posts, 5)

	t.Run("type filter", func(t *testing.T) {
		for _, p := range feed.Posts(model.PostGame) {
			assert.Equal(t, model.PostGame, p.Type)
		}
		assert.Empty(t, feed.Posts(model.PostType("nonsense")))
	})

	t.Run("seed comments attach to the first post", func(t *testing.T) {
		assert.Len(t, feed.Comments(posts[len(posts)-1].ID), 0)
		assert.NotEmpty(t, feed.Comments("post-1"))
	})
}

func TestCreatePost(t *testing.T) {
	feed := newTestFeed()

	t.Run("blank content rejected", func(t *testing.T) {
		_, err := feed.CreatePost("나", "⚾", "   ", model.PostGeneral)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("new post goes first", func(t *testing.T) {
		post, err := feed.CreatePost("나", "🐻", "오늘 직관 가는 사람?", model.PostGeneral)
		require.NoError(t, err)
		assert.Equal(t, "2025-07-18 21:05", post.Timestamp)

		posts := feed.Posts("")
		require.NotEmpty(t, posts)
		assert.Equal(t, post.ID, posts[0].ID)
	})

	t.Run("unknown type falls back to general", func(t *testing.T) {
		post, err := feed.CreatePost("나", "🐻", "ㅎㅇ", model.PostType("meme"))
		require.NoError(t, err)
		assert.Equal(t, model.PostGeneral, post.Type)
	})
}

func TestToggleLike(t *testing.T) {
	feed := newTestFeed()
	before := feed.Posts("")[0]

	liked, err := feed.ToggleLike(before.ID)
	require.NoError(t, err)
	assert.Equal(t, !before.IsLiked, liked.IsLiked)

	reverted, err := feed.ToggleLike(before.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Likes, reverted.Likes)
	assert.Equal(t, before.IsLiked, reverted.IsLiked)

	_, err = feed.ToggleLike("no-such-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAddComment(t *testing.T) {
	feed := newTestFeed()
	post := feed.Posts("")[0]
	countBefore := post.Comments

	comment, err := feed.AddComment(post.ID, "나", "⚾", "동의합니다")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)

	refreshed := feed.Posts("")[0]
	assert.Equal(t, countBefore+1, refreshed.Comments)

	_, err = feed.AddComment(post.ID, "나", "⚾", " ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = feed.AddComment("no-such-post", "나", "⚾", "어디 갔지")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
