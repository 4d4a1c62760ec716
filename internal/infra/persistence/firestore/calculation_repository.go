package firestore

import (
	"context"

	fsLib "cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"freightprint/config"
	domainerrors "freightprint/internal/domain/errors"
	"freightprint/internal/domain/entity"
	"freightprint/internal/domain/repository"
	"freightprint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultCollection = "calculations"

// calculationRepository implements repository.CalculationRepository on
// top of a Firestore collection. The document ID is the calculation's
// UUID string.
type calculationRepository struct {
	client     *fsLib.Client
	collection string
}

// NewCalculationRepository is the constructor for calculationRepository.
func NewCalculationRepository(client *fsLib.Client, cfg *config.Config) repository.CalculationRepository {
	collection := defaultCollection
	if cfg.Firestore != nil && cfg.Firestore.Collection != "" {
		collection = cfg.Firestore.Collection
	}

	return &calculationRepository{
		client:     client,
		collection: collection,
	}
}

// Create persists a new calculation document.
func (repo *calculationRepository) Create(ctx context.Context, calculation *entity.Calculation) error {
	calculationM := model.FromCalculationDomain(calculation)

	docRef := repo.client.Collection(repo.collection).Doc(calculationM.ID)
	if _, err := docRef.Create(ctx, calculationM); err != nil {
		return domainerrors.NewDocumentStoreError(err, "failed to create calculation document")
	}

	return nil
}

// FindByID retrieves a calculation by its unique ID.
func (repo *calculationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Calculation, error) {
	docSnap, err := repo.client.Collection(repo.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCalculationNotFound
		}

		return nil, errors.Wrap(err, "failed to get calculation document")
	}

	var calculationM model.CalculationModel
	if err := docSnap.DataTo(&calculationM); err != nil {
		return nil, errors.Wrap(err, "failed to decode calculation document")
	}
	calculationM.ID = docSnap.Ref.ID

	return model.ToCalculationDomain(&calculationM), nil
}

// FindByUser retrieves a user's calculations ordered newest first.
// A limit of zero or less returns the full history.
func (repo *calculationRepository) FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Calculation, error) {
	query := repo.client.Collection(repo.collection).
		Where("userId", "==", userID).
		OrderBy("createdAt", fsLib.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	calculations := make([]*entity.Calculation, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate calculation documents")
		}

		var calculationM model.CalculationModel
		if err := docSnap.DataTo(&calculationM); err != nil {
			return nil, errors.Wrap(err, "failed to decode calculation document")
		}
		calculationM.ID = docSnap.Ref.ID

		calculations = append(calculations, model.ToCalculationDomain(&calculationM))
	}

	return calculations, nil
}

// DeleteByID removes a calculation document. Deleting a document that
// does not exist is not an error in Firestore and is treated the same
// way here.
func (repo *calculationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	docRef := repo.client.Collection(repo.collection).Doc(id.String())
	if _, err := docRef.Delete(ctx); err != nil {
		return domainerrors.NewDocumentStoreError(err, "failed to delete calculation document")
	}

	return nil
}

// CountByUser returns the number of calculations stored for a user
// using a server-side aggregation query.
func (repo *calculationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	query := repo.client.Collection(repo.collection).
		Where("userId", "==", userID)

	result, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count calculation documents")
	}

	countValue, ok := result["count"]
	if !ok {
		return 0, errors.New("count missing from aggregation result")
	}

	count, ok := countValue.(*firestorepb.Value)
	if !ok {
		return 0, errors.New("unexpected aggregation result type")
	}

	return count.GetIntegerValue(), nil
}
