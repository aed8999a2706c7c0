package model

// PostType categorizes a community post.
type PostType string

const (
	PostGeneral    PostType = "general"
	PostGame       PostType = "game"
	PostPhoto      PostType = "photo"
	PostPrediction PostType = "prediction"
)

// ValidPostType reports whether t is a known post category.
func ValidPostType(t PostType) bool {
	switch t {
	case PostGeneral, PostGame, PostPhoto, PostPrediction:
		return true
	}
	return false
}

// Post is a community feed item.  Comments holds the comment count;
// the comment bodies live separately and reference the post by ID.
type Post struct {
	ID        string   `json:"id"`
	Author    string   `json:"author"`
	Avatar    string   `json:"avatar"`
	Content   string   `json:"content"`
	Image     string   `json:"image,omitempty"`
	Timestamp string   `json:"timestamp"`
	Likes     int      `json:"likes"`
	Comments  int      `json:"comments"`
	Type      PostType `json:"type"`
	GameDate  string   `json:"gameDate,omitempty"`
	IsLiked   bool     `json:"isLiked"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
}

// Topic is a trending hashtag with its mention count.
type Topic struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CommunityStats summarizes feed activity shown in the community header.
type CommunityStats struct {
	ActiveFans   int `json:"activeFans"`
	PostsToday   int `json:"postsToday"`
	CommentsWeek int `json:"commentsWeek"`
}
