package premium

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Service is the surface consumed by command layers and other host
// collaborators. It routes operations to the account-scope or
// character-scope store; the two scopes are fully independent and the
// service never couples them (OnLogin sweeps each on its own).
type Service struct {
	accounts   *Store
	characters *Store
	log        logrus.FieldLogger
}

// NewService wires the two per-scope stores together. A nil logger
// falls back to the logrus standard logger.
func NewService(accounts, characters *Store, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{accounts: accounts, characters: characters, log: log}
}

func (s *Service) store(scope Scope) (*Store, error) {
	switch scope {
	case ScopeAccount:
		return s.accounts, nil
	case ScopeCharacter:
		return s.characters, nil
	default:
		return nil, fmt.Errorf("premium: unknown scope %q", scope)
	}
}

// GetEntitlement returns the stored grant for the subject, or nil when
// none exists. The record is returned raw; callers that care about
// expiration check Expired themselves or rely on the sweep triggers.
func (s *Service) GetEntitlement(ctx context.Context, scope Scope, subjectID uint64) (*Entitlement, error) {
	st, err := s.store(scope)
	if err != nil {
		return nil, err
	}
	return st.Get(ctx, subjectID)
}

// CreateEntitlement grants the subject the given level. It returns
// false when the subject already holds a grant, and ErrInvalidLevel
// for levels below 1.
func (s *Service) CreateEntitlement(ctx context.Context, scope Scope, subjectID uint64, level int) (bool, error) {
	st, err := s.store(scope)
	if err != nil {
		return false, err
	}
	created, err := st.Create(ctx, subjectID, level)
	if err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{
		"scope":   scope,
		"subject": subjectID,
		"level":   level,
		"created": created,
	}).Debug("premium create")
	return created, nil
}

// DeleteEntitlement revokes the subject's grant. It returns false when
// none exists.
func (s *Service) DeleteEntitlement(ctx context.Context, scope Scope, subjectID uint64) (bool, error) {
	st, err := s.store(scope)
	if err != nil {
		return false, err
	}
	deleted, err := st.Delete(ctx, subjectID)
	if err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{
		"scope":   scope,
		"subject": subjectID,
		"deleted": deleted,
	}).Debug("premium delete")
	return deleted, nil
}

// OnSubjectActive is the lazy-expiry trigger hook. Hosts call it when
// a subject becomes active in the given scope (a login, a character
// entering the world); it evicts the subject's grant if expired.
func (s *Service) OnSubjectActive(ctx context.Context, scope Scope, subjectID uint64, now time.Time) error {
	st, err := s.store(scope)
	if err != nil {
		return err
	}
	removed, err := SweepIfExpired(ctx, st, subjectID, now)
	if err != nil {
		return err
	}
	if removed {
		s.log.WithFields(logrus.Fields{
			"scope":   scope,
			"subject": subjectID,
		}).Info("premium grant expired, removed")
	}
	return nil
}

// OnLogin sweeps both scopes for a player login in one call. The
// sweeps stay independent: a failure on the account side does not skip
// the character side, and the first error is reported after both ran.
func (s *Service) OnLogin(ctx context.Context, accountID, characterID uint64, now time.Time) error {
	accErr := s.OnSubjectActive(ctx, ScopeAccount, accountID, now)
	charErr := s.OnSubjectActive(ctx, ScopeCharacter, characterID, now)
	if accErr != nil {
		return accErr
	}
	return charErr
}
