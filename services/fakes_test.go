package services

import (
	"sort"
	"strings"
	"time"

	"conduit-api/models"

	"gorm.io/gorm"
)

// In-memory stand-ins for the repository interfaces. They mirror the store
// contracts (idempotent edges, count before pagination, newest-first order)
// and record call counts so tests can assert on access patterns.

type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	return nil
}

type fakeArticleRepo struct {
	articles  []*models.Article
	nextID    uint
	now       time.Time
	listCalls int
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	for _, a := range r.articles {
		if a.Slug == article.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	article.ID = r.nextID
	if article.CreatedAt.IsZero() {
		article.CreatedAt = r.now
	}
	article.UpdatedAt = article.CreatedAt
	r.articles = append(r.articles, article)
	return nil
}

func (r *fakeArticleRepo) GetBySlug(slug string) (*models.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	for _, a := range r.articles {
		if a.ID != article.ID && a.Slug == article.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	for i, a := range r.articles {
		if a.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeArticleRepo) GetList(filters models.ArticleFilters) ([]models.Article, int64, error) {
	r.listCalls++

	var matched []*models.Article
	for _, a := range r.articles {
		if filters.Tag != "" && !strings.Contains(strings.Join(a.TagList, ","), filters.Tag) {
			continue
		}
		if filters.AuthorID > 0 && a.AuthorID != filters.AuthorID {
			continue
		}
		if filters.AuthorIDs != nil && !containsID(filters.AuthorIDs, a.AuthorID) {
			continue
		}
		if filters.IDs != nil && !containsID(filters.IDs, a.ID) {
			continue
		}
		matched = append(matched, a)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filters.Offset:]
		}
	}
	if filters.Limit > 0 && filters.Limit < len(matched) {
		matched = matched[:filters.Limit]
	}

	out := make([]models.Article, 0, len(matched))
	for _, a := range matched {
		out = append(out, *a)
	}
	return out, total, nil
}

type fakeFollowRepo struct {
	edges map[[2]uint]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[[2]uint]bool{}}
}

func (r *fakeFollowRepo) Follow(followerID, followingID uint) error {
	r.edges[[2]uint{followerID, followingID}] = true
	return nil
}

func (r *fakeFollowRepo) Unfollow(followerID, followingID uint) error {
	delete(r.edges, [2]uint{followerID, followingID})
	return nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	return r.edges[[2]uint{followerID, followingID}], nil
}

func (r *fakeFollowRepo) FollowingIDs(followerID uint) ([]uint, error) {
	var ids []uint
	for edge := range r.edges {
		if edge[0] == followerID {
			ids = append(ids, edge[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakeFavoriteRepo struct {
	edges       map[[2]uint]bool
	articleRepo *fakeArticleRepo
	idsCalls    int
}

func newFakeFavoriteRepo(articleRepo *fakeArticleRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{edges: map[[2]uint]bool{}, articleRepo: articleRepo}
}

func (r *fakeFavoriteRepo) Add(userID, articleID uint) error {
	key := [2]uint{userID, articleID}
	if r.edges[key] {
		return nil
	}
	r.edges[key] = true
	r.bump(articleID, 1)
	return nil
}

func (r *fakeFavoriteRepo) Remove(userID, articleID uint) error {
	key := [2]uint{userID, articleID}
	if !r.edges[key] {
		return nil
	}
	delete(r.edges, key)
	r.bump(articleID, -1)
	return nil
}

func (r *fakeFavoriteRepo) IsFavorited(userID, articleID uint) (bool, error) {
	return r.edges[[2]uint{userID, articleID}], nil
}

func (r *fakeFavoriteRepo) FavoritedIDs(userID uint) ([]uint, error) {
	r.idsCalls++
	var ids []uint
	for edge := range r.edges {
		if edge[0] == userID {
			ids = append(ids, edge[1])
		}
	}
	return ids, nil
}

func (r *fakeFavoriteRepo) bump(articleID uint, delta int) {
	for _, a := range r.articleRepo.articles {
		if a.ID == articleID {
			a.FavoritesCount += delta
		}
	}
}

type fakeTagRepo struct {
	names map[string]bool
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{names: map[string]bool{}}
}

func (r *fakeTagRepo) Ensure(names []string) error {
	for _, name := range names {
		r.names[name] = true
	}
	return nil
}

func (r *fakeTagRepo) GetAllNames() ([]string, error) {
	var names []string
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
