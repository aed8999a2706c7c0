package repository

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/baseballplanet/fan-engagement/internal/clock"
	"github.com/baseballplanet/fan-engagement/internal/model"
)

// CommunityRepo holds the fan feed: posts, comments and trending
// topics.  The feed is in-memory only, seeded with fixture content, and
// guarded by a mutex since handlers run on concurrent requests.  Posts
// are newest-first; comments keep insertion order.
type CommunityRepo struct {
	mu       sync.RWMutex
	clk      clock.Clock
	posts    []model.Post
	comments []model.Comment
}

// NewCommunityRepo returns a feed seeded with the fixture posts and
// comments.  The clock stamps user-created records.
func NewCommunityRepo(clk clock.Clock) *CommunityRepo {
	return &CommunityRepo{
		clk:      clk,
		posts:    seedPosts(),
		comments: seedComments(),
	}
}

// Posts returns the feed, optionally filtered by post type.  An empty
// filter returns everything.  The returned slice is a copy.
func (r *CommunityRepo) Posts(filter model.PostType) []model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if filter == "" || p.Type == filter {
			out = append(out, p)
		}
	}
	return out
}

// CreatePost prepends a new post to the feed.  Blank content is
// rejected with ErrEmptyContent and unknown types fall back to general.
func (r *CommunityRepo) CreatePost(author, avatar, content string, typ model.PostType) (model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return model.Post{}, ErrEmptyContent
	}
	if !model.ValidPostType(typ) {
		typ = model.PostGeneral
	}
	post := model.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Avatar:    avatar,
		Content:   content,
		Timestamp: r.clk.Now().Format("2006-01-02 15:04"),
		Type:      typ,
	}
	r.mu.Lock()
	r.posts = append([]model.Post{post}, r.posts...)
	r.mu.Unlock()
	return post, nil
}

// ToggleLike flips the viewer's like on a post and adjusts the count.
func (r *CommunityRepo) ToggleLike(postID string) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == postID {
			if r.posts[i].IsLiked {
				r.posts[i].Likes--
			} else {
				r.posts[i].Likes++
			}
			r.posts[i].IsLiked = !r.posts[i].IsLiked
			return r.posts[i], nil
		}
	}
	return model.Post{}, ErrPostNotFound
}

// Comments returns the comments attached to a post in insertion order.
func (r *CommunityRepo) Comments(postID string) []model.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

// AddComment appends a comment to a post and bumps the post's comment
// count.  Blank content is rejected with ErrEmptyContent.
func (r *CommunityRepo) AddComment(postID, author, avatar, content string) (model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return model.Comment{}, ErrEmptyContent
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i := range r.posts {
		if r.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Comment{}, ErrPostNotFound
	}
	comment := model.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Author:    author,
		Avatar:    avatar,
		Content:   content,
		Timestamp: r.clk.Now().Format("2006-01-02 15:04"),
	}
	r.comments = append(r.comments, comment)
	r.posts[idx].Comments++
	return comment, nil
}

// Stats returns the headline numbers shown above the feed.
func (r *CommunityRepo) Stats() model.CommunityStats {
	return model.CommunityStats{ActiveFans: 1234, PostsToday: 89, CommentsWeek: 456}
}

// HotTopics returns the trending hashtags with their mention counts.
func (r *CommunityRepo) HotTopics() []model.Topic {
	return []model.Topic{
		{Tag: "#7월_성적", Count: 45},
		{Tag: "#직관_후기", Count: 32},
		{Tag: "#선수_응원", Count: 28},
		{Tag: "#경기_예측", Count: 21},
		{Tag: "#팬미팅", Count: 15},
	}
}

func seedPosts() []model.Post {
	return []model.Post{
		{
			ID: "post-1", Author: "야구덕후123", Avatar: "⚾",
			Content:   "오늘 경기 정말 짜릿했어요! 9회말 역전승 너무 감동적이었습니다 🔥 우리 팀 최고!",
			Timestamp: "2025-07-20 22:30", Likes: 24, Comments: 8,
			Type: model.PostGame, GameDate: "2025-07-20",
		},
		{
			ID: "post-2", Author: "홈런왕", Avatar: "🏆",
			Content:   "내일 경기 예측해봅시다! 우리 팀 선발투수 컨디션이 좋아 보이는데 어떻게 생각하세요?",
			Timestamp: "2025-07-19 18:45", Likes: 15, Comments: 12,
			Type: model.PostPrediction, IsLiked: true,
		},
		{
			ID: "post-3", Author: "직관러버", Avatar: "📸",
			Content:   "어제 직관 갔다 왔어요! 분위기 정말 최고였습니다. 다음에 같이 가실 분 있나요?",
			Image:     "/placeholder.svg?height=200&width=300",
			Timestamp: "2025-07-18 14:20", Likes: 31, Comments: 6,
			Type: model.PostPhoto,
		},
		{
			ID: "post-4", Author: "팬클럽회장", Avatar: "👑",
			Content:   "7월 팀 성적 정말 좋네요! 이대로만 가면 플레이오프 진출 확실할 것 같아요 💪",
			Timestamp: "2025-07-17 16:10", Likes: 42, Comments: 15,
			Type: model.PostGeneral, IsLiked: true,
		},
		{
			ID: "post-5", Author: "신입팬", Avatar: "🌟",
			Content:   "야구 입문한 지 얼마 안 됐는데 이 팀 응원하게 된 이유가... 정말 매력적이에요!",
			Timestamp: "2025-07-16 20:05", Likes: 18, Comments: 9,
			Type: model.PostGeneral,
		},
	}
}

func seedComments() []model.Comment {
	return []model.Comment{
		{
			ID: "comment-1", PostID: "post-1", Author: "응원단장", Avatar: "📣",
			Content:   "정말 짜릿했죠! 마지막까지 포기하지 않는 모습이 감동적이었어요",
			Timestamp: "2025-07-20 22:35", Likes: 5,
		},
		{
			ID: "comment-2", PostID: "post-1", Author: "야구매니아", Avatar: "⚾",
			Content:   "9회말 역전 홈런 순간 소름 돋았습니다 🔥",
			Timestamp: "2025-07-20 22:40", Likes: 8,
		},
	}
}
