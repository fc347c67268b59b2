package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

type ProfileRepository interface {
	GetPersonalInfo(ctx context.Context) (*entity.PersonalInfo, error)
	UpdatePersonalInfo(ctx context.Context, info *entity.PersonalInfo) error

	ListSkills(ctx context.Context) ([]*entity.Skill, error)
	CreateSkill(ctx context.Context, skill *entity.Skill) error
	UpdateSkill(ctx context.Context, skill *entity.Skill) error
	DeleteSkill(ctx context.Context, id string) error

	ListExperience(ctx context.Context) ([]*entity.Experience, error)
	CreateExperience(ctx context.Context, exp *entity.Experience) error
	UpdateExperience(ctx context.Context, exp *entity.Experience) error
	DeleteExperience(ctx context.Context, id string) error

	ListAchievements(ctx context.Context) ([]*entity.Achievement, error)
	CreateAchievement(ctx context.Context, a *entity.Achievement) error
	UpdateAchievement(ctx context.Context, a *entity.Achievement) error
	DeleteAchievement(ctx context.Context, id string) error

	ListInterests(ctx context.Context) ([]*entity.Interest, error)
	CreateInterest(ctx context.Context, i *entity.Interest) error
	UpdateInterest(ctx context.Context, i *entity.Interest) error
	DeleteInterest(ctx context.Context, id string) error
}
