package post

import (
	"time"

	"github.com/Upadhyay76/Chitrashala/internal/user"
)

type CreateReq struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	MediaURL       string   `json:"media_url"`
	ThumbnailURL   *string  `json:"thumbnail_url,omitempty"`
	Visibility     string   `json:"visibility"`
	AccessType     string   `json:"access_type"`
	Price          *string  `json:"price,omitempty"`
	IsDownloadable bool     `json:"is_downloadable"`
	Tags           []string `json:"tags,omitempty"`
}

type EditReq struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Visibility  string   `json:"visibility"`
	Tags        []string `json:"tags,omitempty"`
}

// View is the response shape for all read paths: the post row plus its tag
// names and the owner's public summary.
type View struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	Type           string       `json:"type"`
	Title          string       `json:"title"`
	Description    *string      `json:"description,omitempty"`
	MediaURL       string       `json:"media_url"`
	ThumbnailURL   *string      `json:"thumbnail_url,omitempty"`
	Visibility     string       `json:"visibility"`
	AccessType     string       `json:"access_type"`
	Price          *string      `json:"price,omitempty"`
	IsDownloadable bool         `json:"is_downloadable"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Tags           []string     `json:"tags"`
	User           user.Summary `json:"user"`
}

type ListResponse struct {
	Posts []View `json:"posts"`
}

func toView(p *Post, tags []string) View {
	if tags == nil {
		tags = []string{}
	}
	v := View{
		ID:             p.ID,
		UserID:         p.UserID,
		Type:           p.Type,
		Title:          p.Title,
		Description:    p.Description,
		MediaURL:       p.MediaURL,
		ThumbnailURL:   p.ThumbnailURL,
		Visibility:     p.Visibility,
		AccessType:     p.AccessType,
		Price:          p.Price,
		IsDownloadable: p.IsDownloadable,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Tags:           tags,
	}
	if p.User != nil {
		v.User = p.User.Summary()
	} else {
		v.User = user.Summary{ID: p.UserID}
	}
	return v
}

func toViews(posts []Post, tagsByPost map[string][]string) []View {
	out := make([]View, 0, len(posts))
	for i := range posts {
		out = append(out, toView(&posts[i], tagsByPost[posts[i].ID]))
	}
	return out
}
