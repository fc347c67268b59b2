package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

const projectsCollection = "projects"

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		project.ID = r.client.Collection(projectsCollection).NewDoc().ID
	}

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.client.Collection(projectsCollection).Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to create project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Project", err)
		}
		return nil, errors.Internal("Failed to get project", err)
	}

	var project entity.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, errors.Internal("Failed to parse project data", err)
	}
	project.ID = doc.Ref.ID

	return &project, nil
}

func (r *firestoreProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	docs, err := r.client.Collection(projectsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list projects", err)
	}

	projects := make([]*entity.Project, 0, len(docs))
	for _, doc := range docs {
		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			logger.Warn("Skipping malformed project %s: %v", doc.Ref.ID, err)
			continue
		}
		project.ID = doc.Ref.ID
		projects = append(projects, &project)
	}

	return projects, nil
}

func (r *firestoreProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = time.Now()

	_, err := r.client.Collection(projectsCollection).Doc(project.ID).Set(ctx, project)
	if err != nil {
		return errors.Internal("Failed to update project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(projectsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete project", err)
	}

	return nil
}
