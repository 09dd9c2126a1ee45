package post_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Upadhyay76/Chitrashala/internal/metrics"
	"github.com/Upadhyay76/Chitrashala/internal/post"
	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db/dbtest"
	"github.com/Upadhyay76/Chitrashala/internal/tag"
	"github.com/Upadhyay76/Chitrashala/internal/user"
)

func newService(t *testing.T) (post.Service, *db.Store) {
	t.Helper()
	store := dbtest.New(t)
	svc := post.NewService(post.NewRepository(store), tag.NewRepository(store), nil)
	return svc, store
}

func seedUser(t *testing.T, store *db.Store, name string) user.User {
	t.Helper()
	u := user.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: name + "@example.com",
	}
	if err := store.Base.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedPost(t *testing.T, store *db.Store, userID, title, visibility string, createdAt time.Time) post.Post {
	t.Helper()
	p := post.Post{
		ID:         uuid.NewString(),
		UserID:     userID,
		Type:       post.TypeImage,
		Title:      title,
		MediaURL:   "https://cdn.example.com/" + uuid.NewString() + ".jpg",
		Visibility: visibility,
		AccessType: post.AccessFree,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	if err := store.Base.Create(&p).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}

func editWithTags(t *testing.T, svc post.Service, p post.Post, tags []string) {
	t.Helper()
	err := svc.Edit(context.Background(), p.ID, p.UserID, post.EditReq{
		Title:      p.Title,
		Visibility: p.Visibility,
		Tags:       tags,
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
}

func joinRowCount(t *testing.T, store *db.Store, postID string) int64 {
	t.Helper()
	var n int64
	if err := store.Base.Model(&post.PostToTag{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
		t.Fatalf("count join rows: %v", err)
	}
	return n
}

func tagNames(t *testing.T, svc post.Service, postID string) []string {
	t.Helper()
	v, err := svc.GetByID(context.Background(), postID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	return v.Tags
}

func sameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	set := map[string]bool{}
	for _, g := range got {
		set[g] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}

func TestListPublicExcludesPrivate(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "alice")
	now := time.Now()
	seedPost(t, store, u.ID, "Public Sunrise", post.VisibilityPublic, now)
	private := seedPost(t, store, u.ID, "Private Stash", post.VisibilityPrivate, now)

	views, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 public post, got %d", len(views))
	}
	for _, v := range views {
		if v.ID == private.ID {
			t.Fatal("private post leaked into public listing")
		}
	}
}

func TestListPublicNewestFirstAndUserSummary(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "bob")
	base := time.Now().Add(-time.Hour)
	old := seedPost(t, store, u.ID, "Older", post.VisibilityPublic, base)
	recent := seedPost(t, store, u.ID, "Newer", post.VisibilityPublic, base.Add(30*time.Minute))

	views, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(views))
	}
	if views[0].ID != recent.ID || views[1].ID != old.ID {
		t.Fatal("posts not ordered newest first")
	}
	if views[0].User.ID != u.ID || views[0].User.Name != "bob" {
		t.Fatalf("user summary not attached: %+v", views[0].User)
	}
}

func TestListPublicEmpty(t *testing.T) {
	svc, _ := newService(t)
	views, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty result, got %d", len(views))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.GetByID(context.Background(), uuid.NewString())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListOwnIncludesPrivate(t *testing.T) {
	svc, store := newService(t)
	owner := seedUser(t, store, "carol")
	other := seedUser(t, store, "dave")
	now := time.Now()
	seedPost(t, store, owner.ID, "Mine Public", post.VisibilityPublic, now)
	seedPost(t, store, owner.ID, "Mine Private", post.VisibilityPrivate, now)
	seedPost(t, store, other.ID, "Not Mine", post.VisibilityPublic, now)

	views, err := svc.ListOwn(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 own posts, got %d", len(views))
	}
	for _, v := range views {
		if v.UserID != owner.ID {
			t.Fatalf("foreign post in own listing: %s", v.ID)
		}
	}
}

func TestSearchMatchesTitleDescriptionAndTags(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "erin")
	now := time.Now()

	byTitle := seedPost(t, store, u.ID, "Sunset Beach", post.VisibilityPublic, now)
	byDesc := seedPost(t, store, u.ID, "Evening Walk", post.VisibilityPublic, now)
	desc := "a gorgeous sunset over the bay"
	if err := store.Base.Model(&post.Post{}).Where("id = ?", byDesc.ID).
		Update("description", desc).Error; err != nil {
		t.Fatalf("set description: %v", err)
	}
	byTag := seedPost(t, store, u.ID, "Untitled Shot", post.VisibilityPublic, now)
	editWithTags(t, svc, byTag, []string{"sunsets"})
	unrelated := seedPost(t, store, u.ID, "Mountain Peak", post.VisibilityPublic, now)

	views, err := svc.Search(context.Background(), "sunset")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	got := map[string]bool{}
	for _, v := range views {
		got[v.ID] = true
	}
	for _, want := range []post.Post{byTitle, byDesc, byTag} {
		if !got[want.ID] {
			t.Fatalf("expected post %q in results", want.Title)
		}
	}
	if got[unrelated.ID] {
		t.Fatal("unrelated post matched")
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "frank")
	p := seedPost(t, store, u.ID, "Sunset Beach", post.VisibilityPublic, time.Now())

	for _, q := range []string{"sunset", "SUNSET", "SuNsEt"} {
		views, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if len(views) != 1 || views[0].ID != p.ID {
			t.Fatalf("query %q: expected the post, got %d results", q, len(views))
		}
	}
}

func TestSearchExcludesPrivate(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "grace")
	seedPost(t, store, u.ID, "Sunset Private", post.VisibilityPrivate, time.Now())

	views, err := svc.Search(context.Background(), "sunset")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(views) != 0 {
		t.Fatal("private post leaked into search results")
	}
}

func TestSearchEmptyQueryRejected(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Search(context.Background(), "")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEditReplacesTagSet(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "henry")
	p := seedPost(t, store, u.ID, "Tagged Post", post.VisibilityPublic, time.Now())

	editWithTags(t, svc, p, []string{"nature", "sky"})
	if got := tagNames(t, svc, p.ID); !sameSet(got, []string{"nature", "sky"}) {
		t.Fatalf("unexpected tags after first edit: %v", got)
	}

	editWithTags(t, svc, p, []string{"a", "b"})
	if got := tagNames(t, svc, p.ID); !sameSet(got, []string{"a", "b"}) {
		t.Fatalf("tags not fully replaced: %v", got)
	}
}

func TestEditIdempotentOnTags(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "iris")
	p := seedPost(t, store, u.ID, "Stable Tags", post.VisibilityPublic, time.Now())

	editWithTags(t, svc, p, []string{"x", "y"})
	editWithTags(t, svc, p, []string{"x", "y"})

	if n := joinRowCount(t, store, p.ID); n != 2 {
		t.Fatalf("expected 2 join rows after repeated edit, got %d", n)
	}
	var tagCount int64
	if err := store.Base.Model(&tag.Tag{}).Count(&tagCount).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if tagCount != 2 {
		t.Fatalf("expected 2 tag rows, got %d", tagCount)
	}
}

func TestEditEmptyTagsClearsLinks(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "judy")
	p := seedPost(t, store, u.ID, "Soon Tagless", post.VisibilityPublic, time.Now())

	editWithTags(t, svc, p, []string{"temp"})
	editWithTags(t, svc, p, []string{})

	if got := tagNames(t, svc, p.ID); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
	if n := joinRowCount(t, store, p.ID); n != 0 {
		t.Fatalf("stale join rows remain: %d", n)
	}
}

func TestEditTrimsAndSkipsEmptyTagNames(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "kate")
	p := seedPost(t, store, u.ID, "Messy Tags", post.VisibilityPublic, time.Now())

	editWithTags(t, svc, p, []string{"  nature ", "", "   ", "nature"})
	if got := tagNames(t, svc, p.ID); !sameSet(got, []string{"nature"}) {
		t.Fatalf("expected single trimmed tag, got %v", got)
	}
}

func TestTagReuseAcrossPosts(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "liam")
	p1 := seedPost(t, store, u.ID, "First", post.VisibilityPublic, time.Now())
	p2 := seedPost(t, store, u.ID, "Second", post.VisibilityPublic, time.Now())

	editWithTags(t, svc, p1, []string{"sunset"})
	editWithTags(t, svc, p2, []string{"sunset"})

	var tagCount int64
	if err := store.Base.Model(&tag.Tag{}).Where("name = ?", "sunset").Count(&tagCount).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if tagCount != 1 {
		t.Fatalf("expected one shared tag row, got %d", tagCount)
	}
	var linkCount int64
	if err := store.Base.Model(&post.PostToTag{}).Count(&linkCount).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if linkCount != 2 {
		t.Fatalf("expected 2 join rows, got %d", linkCount)
	}
}

func TestEditByNonOwnerFailsAndLeavesPostUntouched(t *testing.T) {
	svc, store := newService(t)
	owner := seedUser(t, store, "mona")
	intruder := seedUser(t, store, "nick")
	p := seedPost(t, store, owner.ID, "Original Title", post.VisibilityPublic, time.Now())
	editWithTags(t, svc, p, []string{"nature", "sky"})

	err := svc.Edit(context.Background(), p.ID, intruder.ID, post.EditReq{
		Title:      "hacked",
		Visibility: post.VisibilityPrivate,
		Tags:       []string{"hacked"},
	})
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}

	v, err := svc.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v.Title != "Original Title" || v.Visibility != post.VisibilityPublic {
		t.Fatalf("post mutated by unauthorized edit: %+v", v)
	}
	if !sameSet(v.Tags, []string{"nature", "sky"}) {
		t.Fatalf("tags mutated by unauthorized edit: %v", v.Tags)
	}
}

func TestEditMissingPostIsUnauthorizedNotNotFound(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "olga")

	err := svc.Edit(context.Background(), uuid.NewString(), u.ID, post.EditReq{
		Title:      "anything",
		Visibility: post.VisibilityPublic,
	})
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected collapsed Unauthorized, got %v", err)
	}
}

func TestEditEmptyTitleRejectedBeforeStoreAccess(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "pam")
	p := seedPost(t, store, u.ID, "Keep Me", post.VisibilityPublic, time.Now())
	editWithTags(t, svc, p, []string{"keep"})

	err := svc.Edit(context.Background(), p.ID, u.ID, post.EditReq{
		Title:      "   ",
		Visibility: post.VisibilityPrivate,
		Tags:       []string{"dropped"},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	v, err := svc.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v.Title != "Keep Me" || !sameSet(v.Tags, []string{"keep"}) {
		t.Fatalf("post changed despite validation failure: %+v", v)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "quinn")
	ctx := context.Background()

	cases := []struct {
		name string
		req  post.CreateReq
	}{
		{"missing title", post.CreateReq{Type: post.TypeImage, MediaURL: "https://x/y.jpg"}},
		{"missing media", post.CreateReq{Type: post.TypeImage, Title: "t"}},
		{"bad type", post.CreateReq{Type: "gif", Title: "t", MediaURL: "https://x/y.gif"}},
		{"paid without price", post.CreateReq{
			Type: post.TypeImage, Title: "t", MediaURL: "https://x/y.jpg", AccessType: post.AccessPaid,
		}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, u.ID, tc.req); !apperr.IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestCreateWithTagsRoundTrip(t *testing.T) {
	svc, store := newService(t)
	u := seedUser(t, store, "rosa")

	v, err := svc.Create(context.Background(), u.ID, post.CreateReq{
		Type:     post.TypeVideo,
		Title:    "Clip",
		MediaURL: "https://cdn.example.com/clip.mp4",
		Tags:     []string{"travel", "city"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Visibility != post.VisibilityPublic || v.AccessType != post.AccessFree {
		t.Fatalf("defaults not applied: %+v", v)
	}
	if got := tagNames(t, svc, v.ID); !sameSet(got, []string{"travel", "city"}) {
		t.Fatalf("tags not linked on create: %v", got)
	}
}

func TestEditCountsOutcomes(t *testing.T) {
	svc, store := newService(t)
	owner := seedUser(t, store, "tamar")
	p := seedPost(t, store, owner.ID, "Original", post.VisibilityPublic, time.Now())

	okBefore := testutil.ToFloat64(metrics.PostEdits.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(metrics.PostEdits.WithLabelValues("error"))

	editWithTags(t, svc, p, []string{"street"})
	if err := svc.Edit(context.Background(), p.ID, "not-the-owner", post.EditReq{Title: "Hijack"}); !apperr.IsUnauthorized(err) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.PostEdits.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Fatalf("expected one ok edit counted, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.PostEdits.WithLabelValues("error")) - errBefore; got != 1 {
		t.Fatalf("expected one failed edit counted, got %v", got)
	}
}
