package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/logger"
)

type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
}

func NewProjectUseCase(projectRepo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo}
}

type CreateProjectInput struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"long_description"`
	Image           string   `json:"image"`
	Technologies    []string `json:"technologies"`
	GithubURL       string   `json:"github_url"`
	LiveURL         string   `json:"live_url"`
	Featured        bool     `json:"featured"`
	Order           int      `json:"order"`
	Category        string   `json:"category"`
}

type UpdateProjectInput struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	Image           *string   `json:"image"`
	Technologies    *[]string `json:"technologies"`
	GithubURL       *string   `json:"github_url"`
	LiveURL         *string   `json:"live_url"`
	Featured        *bool     `json:"featured"`
	Order           *int      `json:"order"`
	Category        *string   `json:"category"`
}

func (uc *ProjectUseCase) Create(ctx context.Context, input CreateProjectInput) (*entity.Project, error) {
	now := time.Now()
	project := &entity.Project{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Image:           input.Image,
		Technologies:    input.Technologies,
		GithubURL:       input.GithubURL,
		LiveURL:         input.LiveURL,
		Featured:        input.Featured,
		Order:           input.Order,
		Category:        input.Category,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		logger.Error("Create project %q failed: %v", input.Title, err)
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, id string, input UpdateProjectInput) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.LongDescription != nil {
		project.LongDescription = *input.LongDescription
	}
	if input.Image != nil {
		project.Image = *input.Image
	}
	if input.Technologies != nil {
		project.Technologies = *input.Technologies
	}
	if input.GithubURL != nil {
		project.GithubURL = *input.GithubURL
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.Order != nil {
		project.Order = *input.Order
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	project.UpdatedAt = time.Now()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		logger.Error("Update project %s failed: %v", id, err)
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.projectRepo.Delete(ctx, id)
}

func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

// List returns all projects in their curated display order.
func (uc *ProjectUseCase) List(ctx context.Context) ([]*entity.Project, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})
	return projects, nil
}

func (uc *ProjectUseCase) ListFeatured(ctx context.Context) ([]*entity.Project, error) {
	projects, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]*entity.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}
