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

const (
	personalInfoCollection = "personalInfo"
	personalInfoDocID      = "main"
	skillsCollection       = "skills"
	experienceCollection   = "experience"
	achievementsCollection = "achievements"
	interestsCollection    = "interests"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) GetPersonalInfo(ctx context.Context) (*entity.PersonalInfo, error) {
	doc, err := r.client.Collection(personalInfoCollection).Doc(personalInfoDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Personal info", err)
		}
		return nil, errors.Internal("Failed to get personal info", err)
	}

	var info entity.PersonalInfo
	if err := doc.DataTo(&info); err != nil {
		return nil, errors.Internal("Failed to parse personal info data", err)
	}
	info.ID = doc.Ref.ID

	return &info, nil
}

func (r *firestoreProfileRepository) UpdatePersonalInfo(ctx context.Context, info *entity.PersonalInfo) error {
	info.ID = personalInfoDocID
	info.UpdatedAt = time.Now()

	_, err := r.client.Collection(personalInfoCollection).Doc(personalInfoDocID).Set(ctx, info)
	if err != nil {
		return errors.Internal("Failed to update personal info", err)
	}

	return nil
}

func (r *firestoreProfileRepository) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	docs, err := r.listCollection(ctx, skillsCollection)
	if err != nil {
		return nil, err
	}

	skills := make([]*entity.Skill, 0, len(docs))
	for _, doc := range docs {
		var skill entity.Skill
		if err := doc.DataTo(&skill); err != nil {
			logger.Warn("Skipping malformed skill %s: %v", doc.Ref.ID, err)
			continue
		}
		skill.ID = doc.Ref.ID
		skills = append(skills, &skill)
	}
	return skills, nil
}

func (r *firestoreProfileRepository) CreateSkill(ctx context.Context, skill *entity.Skill) error {
	return r.createDoc(ctx, skillsCollection, &skill.ID, skill)
}

func (r *firestoreProfileRepository) UpdateSkill(ctx context.Context, skill *entity.Skill) error {
	return r.setDoc(ctx, skillsCollection, skill.ID, skill)
}

func (r *firestoreProfileRepository) DeleteSkill(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, skillsCollection, id)
}

func (r *firestoreProfileRepository) ListExperience(ctx context.Context) ([]*entity.Experience, error) {
	docs, err := r.listCollection(ctx, experienceCollection)
	if err != nil {
		return nil, err
	}

	experiences := make([]*entity.Experience, 0, len(docs))
	for _, doc := range docs {
		var exp entity.Experience
		if err := doc.DataTo(&exp); err != nil {
			logger.Warn("Skipping malformed experience %s: %v", doc.Ref.ID, err)
			continue
		}
		exp.ID = doc.Ref.ID
		experiences = append(experiences, &exp)
	}
	return experiences, nil
}

func (r *firestoreProfileRepository) CreateExperience(ctx context.Context, exp *entity.Experience) error {
	return r.createDoc(ctx, experienceCollection, &exp.ID, exp)
}

func (r *firestoreProfileRepository) UpdateExperience(ctx context.Context, exp *entity.Experience) error {
	return r.setDoc(ctx, experienceCollection, exp.ID, exp)
}

func (r *firestoreProfileRepository) DeleteExperience(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, experienceCollection, id)
}

func (r *firestoreProfileRepository) ListAchievements(ctx context.Context) ([]*entity.Achievement, error) {
	docs, err := r.listCollection(ctx, achievementsCollection)
	if err != nil {
		return nil, err
	}

	achievements := make([]*entity.Achievement, 0, len(docs))
	for _, doc := range docs {
		var a entity.Achievement
		if err := doc.DataTo(&a); err != nil {
			logger.Warn("Skipping malformed achievement %s: %v", doc.Ref.ID, err)
			continue
		}
		a.ID = doc.Ref.ID
		achievements = append(achievements, &a)
	}
	return achievements, nil
}

func (r *firestoreProfileRepository) CreateAchievement(ctx context.Context, a *entity.Achievement) error {
	return r.createDoc(ctx, achievementsCollection, &a.ID, a)
}

func (r *firestoreProfileRepository) UpdateAchievement(ctx context.Context, a *entity.Achievement) error {
	return r.setDoc(ctx, achievementsCollection, a.ID, a)
}

func (r *firestoreProfileRepository) DeleteAchievement(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, achievementsCollection, id)
}

func (r *firestoreProfileRepository) ListInterests(ctx context.Context) ([]*entity.Interest, error) {
	docs, err := r.listCollection(ctx, interestsCollection)
	if err != nil {
		return nil, err
	}

	interests := make([]*entity.Interest, 0, len(docs))
	for _, doc := range docs {
		var i entity.Interest
		if err := doc.DataTo(&i); err != nil {
			logger.Warn("Skipping malformed interest %s: %v", doc.Ref.ID, err)
			continue
		}
		i.ID = doc.Ref.ID
		interests = append(interests, &i)
	}
	return interests, nil
}

func (r *firestoreProfileRepository) CreateInterest(ctx context.Context, i *entity.Interest) error {
	return r.createDoc(ctx, interestsCollection, &i.ID, i)
}

func (r *firestoreProfileRepository) UpdateInterest(ctx context.Context, i *entity.Interest) error {
	return r.setDoc(ctx, interestsCollection, i.ID, i)
}

func (r *firestoreProfileRepository) DeleteInterest(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, interestsCollection, id)
}

func (r *firestoreProfileRepository) listCollection(ctx context.Context, name string) ([]*firestore.DocumentSnapshot, error) {
	docs, err := r.client.Collection(name).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list "+name, err)
	}
	return docs, nil
}

func (r *firestoreProfileRepository) createDoc(ctx context.Context, collection string, id *string, data interface{}) error {
	if *id == "" {
		*id = r.client.Collection(collection).NewDoc().ID
	}
	return r.setDoc(ctx, collection, *id, data)
}

func (r *firestoreProfileRepository) setDoc(ctx context.Context, collection, id string, data interface{}) error {
	_, err := r.client.Collection(collection).Doc(id).Set(ctx, data)
	if err != nil {
		return errors.Internal("Failed to write "+collection+" document", err)
	}
	return nil
}

func (r *firestoreProfileRepository) deleteDoc(ctx context.Context, collection, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete "+collection+" document", err)
	}
	return nil
}
