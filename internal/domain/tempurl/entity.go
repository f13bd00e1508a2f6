package tempurl

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

var (
	ErrEmptyName          = errors.New("url name cannot be empty")
	ErrNameTooLong        = errors.New("url name exceeds maximum length")
	ErrInvalidURL         = errors.New("url must be an absolute http or https address")
	ErrDescriptionTooLong = errors.New("url description exceeds maximum length")
	ErrSessionMissing     = errors.New("session id is required")
)

// URL is a session-scoped named link whose address may be filled in later.
type URL struct {
	id          uuid.UUID
	sessionID   string
	name        string
	address     *string
	description *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewURL(sessionID, name string, address, description *string, now time.Time) (*URL, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionMissing
	}
	u := &URL{
		id:        uuid.New(),
		sessionID: sessionID,
		createdAt: now,
		updatedAt: now,
	}
	if err := u.set(name, address, description); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructURL(id uuid.UUID, sessionID, name string, address, description *string, createdAt, updatedAt time.Time) *URL {
	return &URL{
		id:          id,
		sessionID:   sessionID,
		name:        name,
		address:     address,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces every mutable field; callers merge patches beforehand.
func (u *URL) Update(name string, address, description *string, now time.Time) error {
	if err := u.set(name, address, description); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

func (u *URL) set(name string, address, description *string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return ErrEmptyName
	}
	if len(n) > MaxNameLength {
		return ErrNameTooLong
	}

	var addr *string
	if address != nil && strings.TrimSpace(*address) != "" {
		a := strings.TrimSpace(*address)
		if err := validateAddress(a); err != nil {
			return err
		}
		addr = &a
	}

	var desc *string
	if description != nil {
		d := strings.TrimSpace(*description)
		if len(d) > MaxDescriptionLength {
			return ErrDescriptionTooLong
		}
		if d != "" {
			desc = &d
		}
	}

	u.name = n
	u.address = addr
	u.description = desc
	return nil
}

func validateAddress(a string) error {
	parsed, err := url.Parse(a)
	if err != nil || parsed.Host == "" {
		return ErrInvalidURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidURL
	}
	return nil
}

func (u *URL) ID() uuid.UUID        { return u.id }
func (u *URL) SessionID() string    { return u.sessionID }
func (u *URL) Name() string         { return u.name }
func (u *URL) Address() *string     { return u.address }
func (u *URL) Description() *string { return u.description }
func (u *URL) CreatedAt() time.Time { return u.createdAt }
func (u *URL) UpdatedAt() time.Time { return u.updatedAt }
func (u *URL) IsTemporary() bool    { return true }
func (u *URL) HasAddress() bool     { return u.address != nil }
