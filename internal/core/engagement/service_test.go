package engagement

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Penwall/internal/core/notifications"
	"Penwall/internal/core/posts"
	"Penwall/internal/core/profiles"
)

// fakeLedgerRepo keeps edges and counters in memory with the same
// transactional contract as the Postgres repo: a toggle mutates the edge set
// and its counter together or not at all.
type fakeLedgerRepo struct {
	likes          map[string]bool // "actor|post"
	follows        map[string]bool // "follower|following"
	reports        map[string]bool // "reporter|post"
	likesCount     map[string]int
	followersCount map[string]int
	followingCount map[string]int
	reportsCount   map[string]int
	postsCount     map[string]int
	createdPosts   []*posts.Post
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		likes:          make(map[string]bool),
		follows:        make(map[string]bool),
		reports:        make(map[string]bool),
		likesCount:     make(map[string]int),
		followersCount: make(map[string]int),
		followingCount: make(map[string]int),
		reportsCount:   make(map[string]int),
		postsCount:     make(map[string]int),
	}
}

func edgeKey(a, b string) string { return a + "|" + b }

func (r *fakeLedgerRepo) ToggleLike(ctx context.Context, actorID, postID string) (bool, error) {
	key := edgeKey(actorID, postID)
	if r.likes[key] {
		delete(r.likes, key)
		r.likesCount[postID]--
		return false, nil
	}
	r.likes[key] = true
	r.likesCount[postID]++
	return true, nil
}

func (r *fakeLedgerRepo) ToggleFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	key := edgeKey(followerID, followingID)
	if r.follows[key] {
		delete(r.follows, key)
		r.followersCount[followingID]--
		r.followingCount[followerID]--
		return false, nil
	}
	r.follows[key] = true
	r.followersCount[followingID]++
	r.followingCount[followerID]++
	return true, nil
}

func (r *fakeLedgerRepo) CreateReport(ctx context.Context, report *Report) error {
	key := edgeKey(report.ReporterID, report.PostID)
	if r.reports[key] {
		return ErrDuplicateReport
	}
	r.reports[key] = true
	r.reportsCount[report.PostID]++
	return nil
}

func (r *fakeLedgerRepo) CreatePost(ctx context.Context, post *posts.Post) error {
	r.createdPosts = append(r.createdPosts, post)
	r.postsCount[post.UserID]++
	return nil
}

type fakePostRepo struct {
	posts map[string]*posts.Post
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, posts.ErrPostNotFound
	}
	return post, nil
}

func (r *fakePostRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.posts))
	for id := range r.posts {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeProfileRepo struct {
	profiles map[string]*profiles.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *profiles.Profile) (*profiles.Profile, error) {
	r.profiles[p.ID] = p
	return p, nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profiles.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, profiles.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByPenName(ctx context.Context, penName string) (*profiles.Profile, error) {
	for _, p := range r.profiles {
		if p.PenName == penName {
			return p, nil
		}
	}
	return nil, profiles.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profiles.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, profiles.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetDashboardStats(ctx context.Context, id string) (*profiles.DashboardStats, error) {
	return &profiles.DashboardStats{}, nil
}

func (r *fakeProfileRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	return ids, nil
}

type dispatched struct {
	recipientID string
	kind        string
	content     string
}

type fakeDispatcher struct {
	sent []dispatched
	err  error
}

func (d *fakeDispatcher) Notify(ctx context.Context, recipientID, kind, content string) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, dispatched{recipientID, kind, content})
	return nil
}

type ledgerFixture struct {
	service    Service
	repo       *fakeLedgerRepo
	postRepo   *fakePostRepo
	dispatcher *fakeDispatcher
}

func newLedgerFixture() *ledgerFixture {
	repo := newFakeLedgerRepo()
	postRepo := &fakePostRepo{posts: map[string]*posts.Post{
		"post-1": {ID: "post-1", UserID: "owner", Content: "hello"},
		"hidden": {ID: "hidden", UserID: "owner", Content: "moderated", IsHidden: true},
	}}
	profileRepo := &fakeProfileRepo{profiles: map[string]*profiles.Profile{
		"owner": {ID: "owner", PenName: "wall_owner"},
		"alice": {ID: "alice", PenName: "alice"},
		"bob":   {ID: "bob", PenName: "bob"},
	}}
	dispatcher := &fakeDispatcher{}

	return &ledgerFixture{
		service:    NewLedgerService(repo, postRepo, profileRepo, dispatcher),
		repo:       repo,
		postRepo:   postRepo,
		dispatcher: dispatcher,
	}
}

func TestToggleLike_IsSelfInverse(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	first, err := f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, f.repo.likesCount["post-1"])

	second, err := f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, f.repo.likesCount["post-1"])
	assert.Empty(t, f.repo.likes)
}

func TestToggleLike_CounterMatchesEdgeCount(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)
	_, err = f.service.ToggleLike(ctx, "bob", "post-1")
	require.NoError(t, err)
	_, err = f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)

	assert.Equal(t, len(f.repo.likes), f.repo.likesCount["post-1"])
	assert.Equal(t, 1, f.repo.likesCount["post-1"])
}

func TestToggleLike_NotifiesOwnerOnLikeOnly(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)

	require.Len(t, f.dispatcher.sent, 1)
	assert.Equal(t, "owner", f.dispatcher.sent[0].recipientID)
	assert.Equal(t, notifications.KindLike, f.dispatcher.sent[0].kind)
	assert.Equal(t, "alice liked your post", f.dispatcher.sent[0].content)

	// The unlike half of the toggle is not newsworthy
	_, err = f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.Len(t, f.dispatcher.sent, 1)
}

func TestToggleLike_SelfLikeSuppressesNotification(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	result, err := f.service.ToggleLike(ctx, "owner", "post-1")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, f.repo.likesCount["post-1"])
	assert.Empty(t, f.dispatcher.sent)
}

func TestToggleLike_DispatchFailureDoesNotFailToggle(t *testing.T) {
	f := newLedgerFixture()
	f.dispatcher.err = errors.New("notification store down")
	ctx := context.Background()

	result, err := f.service.ToggleLike(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, f.repo.likesCount["post-1"])
}

func TestToggleLike_MissingPost(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.service.ToggleLike(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestToggleLike_HiddenPostTreatedAsNotFound(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.service.ToggleLike(context.Background(), "alice", "hidden")
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	assert.Empty(t, f.repo.likes)
}

func TestToggleFollow_IsSelfInverse(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	first, err := f.service.ToggleFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, first.Following)
	assert.Equal(t, 1, f.repo.followersCount["bob"])
	assert.Equal(t, 1, f.repo.followingCount["alice"])

	second, err := f.service.ToggleFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, second.Following)
	assert.Equal(t, 0, f.repo.followersCount["bob"])
	assert.Equal(t, 0, f.repo.followingCount["alice"])
}

func TestToggleFollow_RejectsSelfFollow(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.service.ToggleFollow(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Empty(t, f.repo.follows)
}

func TestToggleFollow_MissingTarget(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.service.ToggleFollow(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestToggleFollow_NotifiesTargetOnFollowOnly(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.service.ToggleFollow(ctx, "alice", "bob")
	require.NoError(t, err)

	require.Len(t, f.dispatcher.sent, 1)
	assert.Equal(t, "bob", f.dispatcher.sent[0].recipientID)
	assert.Equal(t, notifications.KindFollow, f.dispatcher.sent[0].kind)
	assert.Equal(t, "alice started following you", f.dispatcher.sent[0].content)

	_, err = f.service.ToggleFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Len(t, f.dispatcher.sent, 1)
}

func TestSubmitReport_CreatesPendingReport(t *testing.T) {
	f := newLedgerFixture()

	report, err := f.service.SubmitReport(context.Background(), "alice", "post-1", ReasonSpam)
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, ReportStatusPending, report.Status)
	assert.Equal(t, 1, f.repo.reportsCount["post-1"])
}

func TestSubmitReport_DuplicateRejectedWithoutCounterChange(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.service.SubmitReport(ctx, "alice", "post-1", ReasonSpam)
	require.NoError(t, err)

	_, err = f.service.SubmitReport(ctx, "alice", "post-1", ReasonHarassment)
	assert.ErrorIs(t, err, ErrDuplicateReport)
	assert.Equal(t, 1, f.repo.reportsCount["post-1"])
}

func TestSubmitReport_UnknownReason(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.service.SubmitReport(context.Background(), "alice", "post-1", "because")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "reason", validationErr.Field)
}

func TestSubmitReport_DistinctReportersBothCount(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.service.SubmitReport(ctx, "alice", "post-1", ReasonSpam)
	require.NoError(t, err)
	_, err = f.service.SubmitReport(ctx, "bob", "post-1", ReasonOther)
	require.NoError(t, err)

	assert.Equal(t, 2, f.repo.reportsCount["post-1"])
}

func TestCreatePost_Succeeds(t *testing.T) {
	f := newLedgerFixture()

	post, err := f.service.CreatePost(context.Background(), "alice", "first post")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "alice", post.UserID)
	assert.Equal(t, 1, f.repo.postsCount["alice"])
}

func TestCreatePost_RejectsEmptyContent(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.service.CreatePost(context.Background(), "alice", "   ")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Field)
}

func TestCreatePost_ContentLengthCountedInRunes(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	// 2000 multibyte runes are within the limit even though the byte length
	// is far larger.
	atLimit := strings.Repeat("é", posts.MaxContentLength)
	_, err := f.service.CreatePost(ctx, "alice", atLimit)
	require.NoError(t, err)

	overLimit := strings.Repeat("é", posts.MaxContentLength+1)
	_, err = f.service.CreatePost(ctx, "alice", overLimit)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Field)
}

func TestValidReason(t *testing.T) {
	for _, reason := range []string{ReasonSpam, ReasonHarassment, ReasonHateSpeech, ReasonViolence, ReasonSexualContent, ReasonCopyright, ReasonOther} {
		assert.True(t, ValidReason(reason), reason)
	}
	assert.False(t, ValidReason(""))
	assert.False(t, ValidReason("SPAM"))
}
