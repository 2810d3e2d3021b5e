package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"msc-team.backend/internal/domain/entities"
	domainerrors "msc-team.backend/internal/domain/errors"
	"msc-team.backend/internal/infrastructure/models"
	"msc-team.backend/pkg/utils"
)

// TeamMemberMongoRepository is the document store variant of the profile
// store. EnsureIndexes must run before the first write so that the unique
// indexes arbitrate duplicates.
type TeamMemberMongoRepository struct {
	coll *mongo.Collection
}

func NewTeamMemberMongoRepository(db *mongo.Database) *TeamMemberMongoRepository {
	return &TeamMemberMongoRepository{coll: db.Collection(models.TeamMemberCollection)}
}

// EnsureIndexes creates the unique email and regNumber indexes and the
// listing indexes. It is idempotent.
func (r *TeamMemberMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "regNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "department", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

func (r *TeamMemberMongoRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	member.Normalize()
	if err := member.Validate(); err != nil {
		return err
	}
	if member.ID == uuid.Nil {
		member.ID = utils.NewID()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toTeamMemberDocument(member)); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *TeamMemberMongoRepository) FindByEmailOrRegNumber(ctx context.Context, email, regNumber string) (*entities.TeamMember, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"regNumber": regNumber},
	}}
	return r.findOne(ctx, filter)
}

func (r *TeamMemberMongoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *TeamMemberMongoRepository) List(ctx context.Context, filter entities.TeamMemberFilter) ([]*entities.TeamMember, int64, error) {
	query := listFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if filter.Limit > 0 {
		opts.SetSkip(int64(filter.Offset())).SetLimit(int64(filter.Limit))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var docs []models.TeamMemberDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	items := make([]*entities.TeamMember, 0, len(docs))
	for i := range docs {
		items = append(items, fromTeamMemberDocument(&docs[i]))
	}
	return items, total, nil
}

func (r *TeamMemberMongoRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	member.Normalize()
	if err := member.Validate(); err != nil {
		return err
	}
	member.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	doc := toTeamMemberDocument(member)
	set := bson.M{
		"name":          doc.Name,
		"regNumber":     doc.RegNumber,
		"email":         doc.Email,
		"contactNumber": doc.ContactNumber,
		"department":    doc.Department,
		"role":          doc.Role,
		"githubLink":    doc.GithubLink,
		"linkedinLink":  doc.LinkedinLink,
		"resumeLink":    doc.ResumeLink,
		"portfolioLink": doc.PortfolioLink,
		"skills":        doc.Skills,
		"shortBio":      doc.ShortBio,
		"updatedAt":     doc.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if doc.ImagePath != nil {
		set["imagePath"] = *doc.ImagePath
	} else {
		update["$unset"] = bson.M{"imagePath": ""}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		return mapStoreError(err)
	}
	if res.MatchedCount == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberMongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberMongoRepository) findOne(ctx context.Context, filter interface{}) (*entities.TeamMember, error) {
	var doc models.TeamMemberDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapStoreError(err)
	}
	return fromTeamMemberDocument(&doc), nil
}

func listFilter(filter entities.TeamMemberFilter) bson.M {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	return query
}

func toTeamMemberDocument(e *entities.TeamMember) *models.TeamMemberDocument {
	return &models.TeamMemberDocument{
		ID:            e.ID.String(),
		Name:          e.Name,
		RegNumber:     e.RegNumber,
		Email:         e.Email,
		ContactNumber: e.ContactNumber,
		Department:    e.Department,
		Role:          e.Role,
		GithubLink:    e.GithubLink,
		LinkedinLink:  e.LinkedinLink,
		ResumeLink:    e.ResumeLink,
		PortfolioLink: e.PortfolioLink,
		Skills:        e.Skills,
		ShortBio:      e.ShortBio,
		ImagePath:     e.ImagePath.Ptr(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func fromTeamMemberDocument(d *models.TeamMemberDocument) *entities.TeamMember {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	id, _ := uuid.Parse(d.ID)
	return &entities.TeamMember{
		ID:            id,
		Name:          d.Name,
		RegNumber:     d.RegNumber,
		Email:         d.Email,
		ContactNumber: d.ContactNumber,
		Department:    d.Department,
		Role:          d.Role,
		GithubLink:    d.GithubLink,
		LinkedinLink:  d.LinkedinLink,
		ResumeLink:    d.ResumeLink,
		PortfolioLink: d.PortfolioLink,
		Skills:        skills,
		ShortBio:      d.ShortBio,
		ImagePath:     null.StringFromPtr(d.ImagePath),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
