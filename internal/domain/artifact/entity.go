package artifact

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindWelcome Kind = "welcome"
	KindRebuy   Kind = "rebuy"
	KindLanding Kind = "landing"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindWelcome, KindRebuy, KindLanding:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

type Origin string

const (
	OriginDefault Origin = "default"
	OriginCustom  Origin = "custom"
)

var (
	ErrUnknownKind    = errors.New("unknown template kind")
	ErrUnknownOrigin  = errors.New("unknown template origin")
	ErrEmptyContent   = errors.New("template content cannot be empty")
	ErrSessionMissing = errors.New("session id is required")
)

// Ref is what a draft or saved configuration keeps about a template artifact.
type Ref struct {
	ID     uuid.UUID
	Kind   Kind
	Origin Origin
}

// Artifact is a generated or externally edited template owned by a session until promotion.
type Artifact struct {
	id        uuid.UUID
	sessionID string
	kind      Kind
	origin    Origin
	content   string
	createdAt time.Time
}

func NewArtifact(sessionID string, kind Kind, origin Origin, content string, now time.Time) (*Artifact, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionMissing
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if origin != OriginDefault && origin != OriginCustom {
		return nil, ErrUnknownOrigin
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return &Artifact{
		id:        uuid.New(),
		sessionID: sessionID,
		kind:      kind,
		origin:    origin,
		content:   content,
		createdAt: now,
	}, nil
}

func ReconstructArtifact(id uuid.UUID, sessionID string, kind Kind, origin Origin, content string, createdAt time.Time) *Artifact {
	return &Artifact{
		id:        id,
		sessionID: sessionID,
		kind:      kind,
		origin:    origin,
		content:   content,
		createdAt: createdAt,
	}
}

func (a *Artifact) ID() uuid.UUID        { return a.id }
func (a *Artifact) SessionID() string    { return a.sessionID }
func (a *Artifact) Kind() Kind           { return a.kind }
func (a *Artifact) Origin() Origin       { return a.origin }
func (a *Artifact) Content() string      { return a.content }
func (a *Artifact) CreatedAt() time.Time { return a.createdAt }

func (a *Artifact) Ref() Ref {
	return Ref{ID: a.id, Kind: a.kind, Origin: a.origin}
}

// CopyFor duplicates the artifact into another session with a fresh id.
func (a *Artifact) CopyFor(sessionID string, now time.Time) *Artifact {
	return &Artifact{
		id:        uuid.New(),
		sessionID: sessionID,
		kind:      a.kind,
		origin:    a.origin,
		content:   a.content,
		createdAt: now,
	}
}
