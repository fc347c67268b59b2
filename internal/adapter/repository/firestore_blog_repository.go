package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

const blogPostsCollection = "blogPosts"

type firestoreBlogRepository struct {
	client *firestore.Client
}

func NewFirestoreBlogRepository(client *firestore.Client) repository.BlogRepository {
	return &firestoreBlogRepository{
		client: client,
	}
}

func (r *firestoreBlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	if post.ID == "" {
		post.ID = r.client.Collection(blogPostsCollection).NewDoc().ID
	}
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.client.Collection(blogPostsCollection).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	doc, err := r.client.Collection(blogPostsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Blog post", err)
		}
		return nil, errors.Internal("Failed to get blog post", err)
	}

	var post entity.BlogPost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse blog post data", err)
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

func (r *firestoreBlogRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	query := r.client.Collection(blogPostsCollection).Where("slug", "==", slug).Limit(1)
	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Blog post", nil)
		}
		return nil, errors.Internal("Failed to query blog post by slug", err)
	}

	var post entity.BlogPost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse blog post data", err)
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

func (r *firestoreBlogRepository) List(ctx context.Context) ([]*entity.BlogPost, error) {
	docs, err := r.client.Collection(blogPostsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list blog posts", err)
	}

	posts := make([]*entity.BlogPost, 0, len(docs))
	for _, doc := range docs {
		var post entity.BlogPost
		if err := doc.DataTo(&post); err != nil {
			logger.Warn("Skipping malformed blog post %s: %v", doc.Ref.ID, err)
			continue
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestoreBlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now()

	_, err := r.client.Collection(blogPostsCollection).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to update blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(blogPostsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	ref := r.client.Collection(blogPostsCollection).Doc(id)

	var views int64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		if v, err := doc.DataAt("views"); err == nil {
			if n, ok := v.(int64); ok {
				views = n
			}
		}
		views++

		return tx.Update(ref, []firestore.Update{{Path: "views", Value: views}})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, errors.NotFound("Blog post", err)
		}
		return 0, errors.Internal("Failed to increment views", err)
	}

	return views, nil
}

func (r *firestoreBlogRepository) SetLiked(ctx context.Context, id, userID string, liked bool) error {
	ref := r.client.Collection(blogPostsCollection).Doc(id)

	var op interface{}
	if liked {
		op = firestore.ArrayUnion(userID)
	} else {
		op = firestore.ArrayRemove(userID)
	}

	_, err := ref.Update(ctx, []firestore.Update{{Path: "likedBy", Value: op}})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Blog post", err)
		}
		return errors.Internal("Failed to update likes", err)
	}

	return nil
}
