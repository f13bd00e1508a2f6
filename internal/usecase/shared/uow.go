package shared

import (
	"context"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Drafts() DraftRepository
	Artifacts() ArtifactRepository
	URLs() TempURLRepository
	Configurations() SavedConfigRepository
	Sellers() SellerRepository
	DB() db.DBTX
}

// DraftRepository deletes the remote draft inside a promotion or clear transaction.
type DraftRepository interface {
	Delete(ctx context.Context, tx db.DBTX, sessionID string) error
}

type ArtifactRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *artifact.Artifact) error
	ListBySession(ctx context.Context, tx db.DBTX, sessionID string) ([]*artifact.Artifact, error)
	FindByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]*artifact.Artifact, error)
	// DetachFromSession hands ownership of ids from the session to saved configurations.
	DetachFromSession(ctx context.Context, tx db.DBTX, sessionID string, ids []uuid.UUID) error
	DeleteBySession(ctx context.Context, tx db.DBTX, sessionID string) (int64, error)
	// DeleteOrphans removes detached artifacts no saved configuration links to.
	DeleteOrphans(ctx context.Context, tx db.DBTX, candidates []uuid.UUID) (int64, error)
}

type TempURLRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *tempurl.URL) error
	Update(ctx context.Context, tx db.DBTX, u *tempurl.URL) error
	FindByID(ctx context.Context, tx db.DBTX, sessionID string, id uuid.UUID) (*tempurl.URL, error)
	ListBySession(ctx context.Context, tx db.DBTX, sessionID string) ([]*tempurl.URL, error)
	Delete(ctx context.Context, tx db.DBTX, sessionID string, id uuid.UUID) error
	DeleteBySession(ctx context.Context, tx db.DBTX, sessionID string) (int64, error)
}

type SavedConfigRepository interface {
	Create(ctx context.Context, tx db.DBTX, cfg *savedconfig.SavedConfiguration) error
	// FindForUpdate locks the row for the rest of the transaction.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*savedconfig.SavedConfiguration, error)
	FindBySeller(ctx context.Context, tx db.DBTX, sellerID uuid.UUID) (*uuid.UUID, error)
	UpdateMetadata(ctx context.Context, tx db.DBTX, cfg *savedconfig.SavedConfiguration) error
	Assign(ctx context.Context, tx db.DBTX, id, sellerID uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type SellerRepository interface {
	Exists(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
}
