package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{blogRepo: blogRepo}
}

type CreateBlogPostInput struct {
	Slug     string `json:"slug" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Date     string `json:"date" validate:"required"`
	ReadTime string `json:"read_time"`
	Image    string `json:"image"`
	Category string `json:"category" validate:"required"`
	Trending bool   `json:"trending"`
	Featured bool   `json:"featured"`
}

type UpdateBlogPostInput struct {
	Slug     *string `json:"slug"`
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Date     *string `json:"date"`
	ReadTime *string `json:"read_time"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
	Trending *bool   `json:"trending"`
	Featured *bool   `json:"featured"`
}

func (uc *BlogUseCase) Create(ctx context.Context, input CreateBlogPostInput) (*entity.BlogPost, error) {
	slug := strings.TrimSpace(input.Slug)
	if existing, err := uc.blogRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, errors.Conflict("A post with this slug already exists")
	}

	now := time.Now()
	post := &entity.BlogPost{
		ID:        uuid.New().String(),
		Slug:      slug,
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Author:    input.Author,
		Date:      input.Date,
		ReadTime:  input.ReadTime,
		Image:     input.Image,
		Category:  input.Category,
		Trending:  input.Trending,
		Featured:  input.Featured,
		Views:     0,
		LikedBy:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		logger.Error("Create blog post %s failed: %v", slug, err)
		return nil, err
	}

	return post, nil
}

func (uc *BlogUseCase) Update(ctx context.Context, id string, input UpdateBlogPostInput) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		post.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.Date != nil {
		post.Date = *input.Date
	}
	if input.ReadTime != nil {
		post.ReadTime = *input.ReadTime
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Trending != nil {
		post.Trending = *input.Trending
	}
	if input.Featured != nil {
		post.Featured = *input.Featured
	}
	post.UpdatedAt = time.Now()

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		logger.Error("Update blog post %s failed: %v", id, err)
		return nil, err
	}

	return post, nil
}

func (uc *BlogUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.blogRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.blogRepo.Delete(ctx, id)
}

// List returns all posts, newest first.
func (uc *BlogUseCase) List(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := uc.blogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortPosts(posts)
	return posts, nil
}

func (uc *BlogUseCase) ListFeatured(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]*entity.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ListRecent returns the n newest posts.
func (uc *BlogUseCase) ListRecent(ctx context.Context, n int) ([]*entity.BlogPost, error) {
	posts, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(posts) > n {
		posts = posts[:n]
	}
	return posts, nil
}

func (uc *BlogUseCase) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return uc.blogRepo.GetBySlug(ctx, slug)
}

// RecordView bumps the post's view counter and returns the new count.
func (uc *BlogUseCase) RecordView(ctx context.Context, slug string) (int64, error) {
	post, err := uc.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	return uc.blogRepo.IncrementViews(ctx, post.ID)
}

// ToggleLike adds or removes the user's like and returns the refreshed post.
func (uc *BlogUseCase) ToggleLike(ctx context.Context, slug, userID string, liked bool) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := uc.blogRepo.SetLiked(ctx, post.ID, userID, liked); err != nil {
		logger.Error("ToggleLike for post %s by %s failed: %v", post.ID, userID, err)
		return nil, err
	}

	return uc.blogRepo.GetByID(ctx, post.ID)
}

func sortPosts(posts []*entity.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
