package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
)

// ProfileUseCase serves the profile page: the personal-info singleton plus
// the ordered skills, experience, achievements and interests collections.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// Profile bundles everything the public profile page renders in one payload.
type Profile struct {
	PersonalInfo *entity.PersonalInfo  `json:"personal_info"`
	Skills       []*entity.Skill       `json:"skills"`
	Experience   []*entity.Experience  `json:"experience"`
	Achievements []*entity.Achievement `json:"achievements"`
	Interests    []*entity.Interest    `json:"interests"`
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*Profile, error) {
	info, err := uc.profileRepo.GetPersonalInfo(ctx)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	skills, err := uc.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	experience, err := uc.ListExperience(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := uc.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	interests, err := uc.ListInterests(ctx)
	if err != nil {
		return nil, err
	}

	return &Profile{
		PersonalInfo: info,
		Skills:       skills,
		Experience:   experience,
		Achievements: achievements,
		Interests:    interests,
	}, nil
}

func (uc *ProfileUseCase) GetPersonalInfo(ctx context.Context) (*entity.PersonalInfo, error) {
	return uc.profileRepo.GetPersonalInfo(ctx)
}

func (uc *ProfileUseCase) UpdatePersonalInfo(ctx context.Context, info *entity.PersonalInfo) error {
	info.ID = "main"
	info.UpdatedAt = time.Now()
	return uc.profileRepo.UpdatePersonalInfo(ctx, info)
}

func (uc *ProfileUseCase) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	skills, err := uc.profileRepo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(skills, func(i, j int) bool { return skills[i].Order < skills[j].Order })
	return skills, nil
}

func (uc *ProfileUseCase) CreateSkill(ctx context.Context, skill *entity.Skill) error {
	skill.ID = uuid.New().String()
	if skill.Items == nil {
		skill.Items = []string{}
	}
	return uc.profileRepo.CreateSkill(ctx, skill)
}

func (uc *ProfileUseCase) UpdateSkill(ctx context.Context, skill *entity.Skill) error {
	return uc.profileRepo.UpdateSkill(ctx, skill)
}

func (uc *ProfileUseCase) DeleteSkill(ctx context.Context, id string) error {
	return uc.profileRepo.DeleteSkill(ctx, id)
}

func (uc *ProfileUseCase) ListExperience(ctx context.Context) ([]*entity.Experience, error) {
	experience, err := uc.profileRepo.ListExperience(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(experience, func(i, j int) bool { return experience[i].Order < experience[j].Order })
	return experience, nil
}

func (uc *ProfileUseCase) CreateExperience(ctx context.Context, exp *entity.Experience) error {
	exp.ID = uuid.New().String()
	if exp.Achievements == nil {
		exp.Achievements = []string{}
	}
	return uc.profileRepo.CreateExperience(ctx, exp)
}

func (uc *ProfileUseCase) UpdateExperience(ctx context.Context, exp *entity.Experience) error {
	return uc.profileRepo.UpdateExperience(ctx, exp)
}

func (uc *ProfileUseCase) DeleteExperience(ctx context.Context, id string) error {
	return uc.profileRepo.DeleteExperience(ctx, id)
}

func (uc *ProfileUseCase) ListAchievements(ctx context.Context) ([]*entity.Achievement, error) {
	achievements, err := uc.profileRepo.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(achievements, func(i, j int) bool { return achievements[i].Order < achievements[j].Order })
	return achievements, nil
}

func (uc *ProfileUseCase) CreateAchievement(ctx context.Context, a *entity.Achievement) error {
	a.ID = uuid.New().String()
	return uc.profileRepo.CreateAchievement(ctx, a)
}

func (uc *ProfileUseCase) UpdateAchievement(ctx context.Context, a *entity.Achievement) error {
	return uc.profileRepo.UpdateAchievement(ctx, a)
}

func (uc *ProfileUseCase) DeleteAchievement(ctx context.Context, id string) error {
	return uc.profileRepo.DeleteAchievement(ctx, id)
}

func (uc *ProfileUseCase) ListInterests(ctx context.Context) ([]*entity.Interest, error) {
	interests, err := uc.profileRepo.ListInterests(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(interests, func(i, j int) bool { return interests[i].Order < interests[j].Order })
	return interests, nil
}

func (uc *ProfileUseCase) CreateInterest(ctx context.Context, i *entity.Interest) error {
	i.ID = uuid.New().String()
	return uc.profileRepo.CreateInterest(ctx, i)
}

func (uc *ProfileUseCase) UpdateInterest(ctx context.Context, i *entity.Interest) error {
	return uc.profileRepo.UpdateInterest(ctx, i)
}

func (uc *ProfileUseCase) DeleteInterest(ctx context.Context, id string) error {
	return uc.profileRepo.DeleteInterest(ctx, id)
}
